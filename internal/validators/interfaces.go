// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request DTOs before any entity is built from
// them.
//
// The only implementation, [RequestValidator], reads go-playground/validator
// struct tags and reports the first failing field by its JSON name, e.g.
// "email is required".
package validators

import "context"

// Validator validates a request value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
