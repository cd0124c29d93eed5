// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the server and the client:
// typed context keys, JSON response writing, JWT token generation and
// validation, password hashing and the resty HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key under which the auth middleware stores the email
// of the authenticated user.
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "luke@tatooine.org")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the authenticated email from the context.
// ok is false when the value is missing, empty or not a string.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
