// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("missing authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header is present
	// but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrResourceNotFound is the body of the router's 404 fallback.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMethodNotAllowed is the body of the router's 405 fallback.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
