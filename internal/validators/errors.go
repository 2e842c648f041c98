package validators

import "errors"

var (
	// ErrUnsupportedType means the validator got a payload it does not know.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidUser wraps the list of failed user field rules.
	ErrInvalidUser = errors.New("invalid user")
)
