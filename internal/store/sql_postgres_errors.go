// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass is the driver-independent category of a failed statement.
// Repositories translate it into their domain sentinels.
type ErrorClass int

const (
	// ClassUnknown covers every error without a domain meaning
	// (connection loss, syntax errors, ...).
	ClassUnknown ErrorClass = iota

	// ClassUniqueViolation: a UNIQUE constraint or index rejected the row.
	ClassUniqueViolation

	// ClassForeignKeyViolation: a referenced row does not exist.
	ClassForeignKeyViolation

	// ClassCheckViolation: a CHECK constraint rejected the row.
	ClassCheckViolation

	// ClassNotNullViolation: a NOT NULL column received NULL.
	ClassNotNullViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [ClassUnknown] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ClassUnknown
}

// ClassifyPgError maps the Class 23 integrity constraint violations of
// PostgreSQL to an [ErrorClass].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ClassForeignKeyViolation
	case pgerrcode.CheckViolation:
		return ClassCheckViolation
	case pgerrcode.NotNullViolation:
		return ClassNotNullViolation
	}

	return ClassUnknown
}
