package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

// userService is a thin pass-through over [store.UserRepository]. Its only
// business rule is turning a rejected save into [ErrUserAlreadyExists].
type userService struct {
	repository store.UserRepository
	logger     *logger.Logger
}

func NewUserService(repository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		logger:     logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repository.List(ctx)
}

func (s *userService) FindUser(ctx context.Context, id int64) (models.User, bool, error) {
	return s.repository.FindOne(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	user := req.User()

	saved, err := s.repository.Save(ctx, user)
	if err != nil {
		return fmt.Errorf("error saving user: %w", err)
	}
	if !saved {
		return fmt.Errorf("%w: id %d", ErrUserAlreadyExists, user.ID)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("user created")
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return s.repository.Delete(ctx, id)
}
