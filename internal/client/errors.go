package client

import "errors"

var (
	ErrNoUsersClient    = errors.New("users client is not provided")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)
