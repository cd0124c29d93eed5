// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens the SQLite file named by dsn (created on first use)
// and pings it. dsn must already carry _foreign_keys=on, see parseDSN.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite serializes writers
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3
// using the extended result codes of constraint failures.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClass {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return ClassUnknown
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ClassUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ClassForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		return ClassCheckViolation
	case sqlite3.ErrConstraintNotNull:
		return ClassNotNullViolation
	}

	return ClassUnknown
}
