package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// memoryUserRepository keeps users in process memory. Insertion order is
// tracked separately from the lookup map so that List is stable.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	order  []int64
	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make(map[int64]models.User),
		order:  make([]int64, 0),
		logger: logger,
	}
}

func (r *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}

	return users, nil
}

func (r *memoryUserRepository) FindOne(_ context.Context, id int64) (models.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	return user, ok, nil
}

func (r *memoryUserRepository) Save(_ context.Context, user models.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return false, nil
	}

	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	return true, nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return false, nil
	}

	delete(r.users, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })
	return true, nil
}
