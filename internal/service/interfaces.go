//go:generate mockgen -source=interfaces.go -destination=../mock/user_service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// UserService exposes the user operations to the transport layer.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUser(ctx context.Context, id int64) (models.User, bool, error)

	// CreateUser stores the user described by req. It returns
	// ErrInvalidDataProvided, ErrUserAlreadyExists or an infrastructure
	// error.
	CreateUser(ctx context.Context, req models.CreateUserRequest) error

	DeleteUser(ctx context.Context, id int64) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
