package adapter

import "errors"

var (
	// ErrNotFound is returned when the server answers 404.
	ErrNotFound = errors.New("not found")

	// ErrRequestFailed is returned for every other failed envelope.
	ErrRequestFailed = errors.New("request failed")

	// ErrUnexpectedResponse is returned when the body is not an envelope
	// or its data does not have the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected response")

	ErrInvalidAddress = errors.New("invalid users API address")
)
