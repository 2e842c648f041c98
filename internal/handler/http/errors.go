// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before the service layer
// is involved. Callers can match against them with [errors.Is].
var (
	// ErrMalformedPayload is returned when the request body is not a JSON
	// object matching the expected shape.
	ErrMalformedPayload = errors.New("malformed request payload")

	// ErrInvalidUserID is returned when the {id} path segment is not a
	// base-10 integer.
	ErrInvalidUserID = errors.New("invalid user id in path")
)
