package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/go-users-api/models"
)

// UserValidator implements [Validator] for user payloads using the struct
// tags declared on [models.CreateUserRequest].
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a [UserValidator] with the "notblank" rule
// registered.
func NewUserValidator() *UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)

	return &UserValidator{validate: v}
}

// Validate checks every rule of a [models.CreateUserRequest] (value or
// pointer) and reports all failed fields at once.
func (v *UserValidator) Validate(ctx context.Context, data any) error {
	var req *models.CreateUserRequest
	switch typed := data.(type) {
	case models.CreateUserRequest:
		req = &typed
	case *models.CreateUserRequest:
		if typed == nil {
			return fmt.Errorf("%w: nil request", ErrInvalidUser)
		}
		req = typed
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, data)
	}

	return describe(v.validate.StructCtx(ctx, req))
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	failed := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		failed = append(failed, fieldErr.Field()+" "+fieldErr.Tag())
	}

	return fmt.Errorf("%w: %s", ErrInvalidUser, strings.Join(failed, ", "))
}
