// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrProfileNotFound is returned for a valid token whose user no longer
	// exists.
	ErrProfileNotFound = errors.New("user of the token does not exist")

	ErrNoUserSelected        = errors.New("no user selected")
	ErrNoItemSelected        = errors.New("no character or planet selected")
	ErrMultipleItemsSelected = errors.New("multiple items selected")
)
