// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the store-generated identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// IsActive marks whether the account is enabled.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
