// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the users API.
//
// The primary abstraction is [UsersClient], which hides the transport and
// the response envelope from callers. The package ships an HTTP/REST
// implementation ([NewHTTPUsersClient]).
//
// Failed responses are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404). The message
// returned by the server is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-users-api/models"
)

// UsersClient defines the operations of the users API.
type UsersClient interface {
	// List returns every user in the order the server reports them.
	List(ctx context.Context) ([]models.UserResponse, error)

	// Get returns the user with the given id, or [ErrNotFound].
	Get(ctx context.Context, id int64) (models.UserResponse, error)

	// Create stores a new user and returns the server's confirmation
	// message. Any rejection is reported as [ErrRequestFailed].
	Create(ctx context.Context, user models.User) (string, error)

	// Delete removes the user with the given id and returns the server's
	// confirmation message.
	Delete(ctx context.Context, id int64) (string, error)
}
