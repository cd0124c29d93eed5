// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of every supported database and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/pressly/goose/v3"
)

// Goose dialect names accepted by [Migrate].
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var migrationDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

// Migrate applies every pending migration of the given dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
