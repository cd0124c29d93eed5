// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
)

// Storages aggregates the repositories of the server together with the
// connection they share.
type Storages struct {
	UserRepository      UserRepository
	CharacterRepository CharacterRepository
	PlanetRepository    PlanetRepository
	FavoriteRepository  FavoriteRepository
	HealthChecker       HealthChecker

	db *DB
}

// NewStorages connects to the database named by cfg, applies the embedded
// migrations and builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		CharacterRepository: NewCharacterRepository(db, log),
		PlanetRepository:    NewPlanetRepository(db, log),
		FavoriteRepository:  NewFavoriteRepository(db, log),
		HealthChecker:       db,
		db:                  db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
