package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/validators"
	"github.com/MKhiriev/go-users-api/models"
)

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) FindUser(ctx context.Context, id int64) (models.User, bool, error) {
	return v.inner.FindUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	// request must carry:
	//  - ID >= 0
	//  - non-blank Name
	//  - Age >= 0
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
