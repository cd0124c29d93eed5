// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives something other
	// than a struct or a pointer to a struct.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrRequiredField is the base of every "<field> is required" error.
	ErrRequiredField = errors.New("required field is missing")

	// ErrInvalidField is the base of every other rule violation
	// (length limits, formats).
	ErrInvalidField = errors.New("invalid field")
)
