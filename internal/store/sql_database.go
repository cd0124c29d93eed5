// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/migrations"
)

// Dialect names the SQL flavour of the connected database. Its values are
// the goose dialect names.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB wraps the connection pool with the dialect-specific query builder and
// error classifier used by every repository.
type DB struct {
	*sql.DB
	dialect            Dialect
	queries            queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN, choosing the driver from
// the DSN scheme, and pings it.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := parseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

// Migrate applies the embedded schema of the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect), db.logger)
}

// Ping implements [HealthChecker].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// classify returns the class of err using the dialect's classifier.
func (db *DB) classify(err error) ErrorClass {
	if db.errorClassificator == nil {
		return ClassUnknown
	}
	return db.errorClassificator.Classify(err)
}

// parseDSN resolves the dialect of dsn and rewrites it into the form the
// driver expects.
//
//	postgres://... and postgresql://...  → pgx, unchanged
//	sqlite:////tmp/x.db                  → sqlite3, file:/tmp/x.db?_foreign_keys=on
//	file:x.db, x.db                      → sqlite3, foreign keys enabled
func parseDSN(dsn string) (Dialect, string, error) {
	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty DSN", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.Contains(dsn, "://") && !strings.HasPrefix(dsn, "sqlite://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	}

	path := dsn
	if strings.HasPrefix(path, "sqlite:///") {
		path = strings.TrimPrefix(path, "sqlite:///")
	} else {
		path = strings.TrimPrefix(path, "sqlite://")
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	if !strings.Contains(path, "_foreign_keys=") {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + "_foreign_keys=on"
	}

	return DialectSQLite, path, nil
}
