// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/metrics"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// observe records the duration of a statement. Only unexpected errors are
// counted as failures.
func observe(operation, table string, start time.Time, err error) {
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
}

// deleteRow removes the row with the given id from table. notFound is
// returned when no row matched.
func (db *DB) deleteRow(ctx context.Context, table string, id int64, notFound error, funcName string) error {
	log := logger.FromContext(ctx)

	query, args, err := db.queries.deleteByID(table, id)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building sql query")
		return buildError(err)
	}

	start := time.Now()
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		observe("delete", table, start, err)
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	observe("delete", table, start, err)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	log.Debug().Str("func", funcName).Int64("id", id).Msg("row deleted")
	return nil
}

// queryRow runs a single-row select and scans it with scan. sql.ErrNoRows
// is translated to notFound.
func (db *DB) queryRow(ctx context.Context, table, query string, args []any, notFound error, funcName string, scan func(rowScanner) error) error {
	log := logger.FromContext(ctx)

	start := time.Now()
	err := scan(db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		observe("select", table, start, nil)
		return notFound
	case err != nil:
		observe("select", table, start, err)
		log.Err(err).Str("func", funcName).Msg("error scanning row")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	observe("select", table, start, nil)
	return nil
}

// queryRows runs a multi-row select and calls scan once per row.
func (db *DB) queryRows(ctx context.Context, table, query string, args []any, funcName string, scan func(rowScanner) error) error {
	log := logger.FromContext(ctx)

	start := time.Now()
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		observe("select", table, start, err)
		log.Err(err).Str("func", funcName).Msg("error executing select")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if scanErr := scan(rows); scanErr != nil {
			observe("select", table, start, scanErr)
			log.Err(scanErr).Str("func", funcName).Msg("error scanning row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		observe("select", table, start, rowsErr)
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	observe("select", table, start, nil)
	return nil
}

// insertRow runs an INSERT ... RETURNING id and returns the new id.
// Constraint violations are handed to onConstraint, which returns the domain
// error for the class or nil when the class has no meaning for the table.
func (db *DB) insertRow(ctx context.Context, table, query string, args []any, funcName string, onConstraint func(ErrorClass) error) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	start := time.Now()
	err := db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == nil {
		observe("insert", table, start, nil)
		return id, nil
	}

	if domainErr := onConstraint(db.classify(err)); domainErr != nil {
		observe("insert", table, start, nil)
		log.Warn().Err(err).Str("func", funcName).Msg("insert rejected by constraint")
		return 0, domainErr
	}

	observe("insert", table, start, err)
	log.Err(err).Str("func", funcName).Msg("error executing insert")
	return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
