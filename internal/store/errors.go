// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user cannot be created because
	// another user already has the same email.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrUserNotFound is returned when no user matches the id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrCharacterNotFound is returned when no character matches the id.
	ErrCharacterNotFound = errors.New("character not found")

	// ErrPlanetNotFound is returned when no planet matches the id.
	ErrPlanetNotFound = errors.New("planet not found")

	// ErrFavoriteNotFound is returned when no favorite matches the id or the
	// (user_id, character_id, planet_id) triple.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrFavoriteAlreadyExists is returned when the unique indexes on
	// favorites reject an insert.
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")

	// ErrReferenceNotFound is returned when a foreign key points to a row
	// that does not exist (or was deleted concurrently).
	ErrReferenceNotFound = errors.New("referenced user, character or planet not found")

	// ErrFavoriteTargetInvalid is returned when the favorites CHECK
	// constraint rejects a row that references none or both targets.
	ErrFavoriteTargetInvalid = errors.New("favorite must reference exactly one character or planet")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails for a reason that has no domain meaning.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
