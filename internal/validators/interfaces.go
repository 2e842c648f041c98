// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
// UserValidator enforces the struct tags on models.CreateUserRequest with
// go-playground/validator.
package validators

import "context"

// Validator validates a whole payload.
type Validator interface {
	Validate(ctx context.Context, data any) error
}

var _ Validator = (*UserValidator)(nil)
