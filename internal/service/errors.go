package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by CreateUser before any storage
	// call when the request fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrUserAlreadyExists is returned by CreateUser when the id is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
