//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// UserRepository owns the user records. Business outcomes are reported
// through the boolean results; the error return is reserved for
// infrastructure failures such as a lost connection or a failed query.
type UserRepository interface {
	// List returns every stored user in insertion order. It never returns
	// a nil slice on success.
	List(ctx context.Context) ([]models.User, error)

	// FindOne returns the user with the given id. ok is false when no such
	// user exists.
	FindOne(ctx context.Context, id int64) (user models.User, ok bool, err error)

	// Save inserts user. It returns false without modifying anything when a
	// user with the same id already exists.
	Save(ctx context.Context, user models.User) (bool, error)

	// Delete removes the user with the given id and reports whether a user
	// was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ErrorClassificator recognises driver-specific errors that carry a
// business meaning for the SQL repository.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a duplicate
	// primary key or unique constraint.
	IsUniqueViolation(err error) bool
}
