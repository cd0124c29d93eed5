// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/starwars-blog/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CharacterRepository persists characters.
type CharacterRepository interface {
	CreateCharacter(ctx context.Context, character models.Character) (models.Character, error)
	GetCharacterByID(ctx context.Context, id int64) (models.Character, error)
	GetAllCharacters(ctx context.Context) ([]models.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
}

// PlanetRepository persists planets.
type PlanetRepository interface {
	CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error)
	GetPlanetByID(ctx context.Context, id int64) (models.Planet, error)
	GetAllPlanets(ctx context.Context) ([]models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

// FavoriteRepository persists favorites.
type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	GetFavoriteByID(ctx context.Context, id int64) (models.Favorite, error)
	// FindFavorite looks a favorite up by its (user_id, character_id,
	// planet_id) triple; nil ids match NULL columns.
	FindFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error)
	GetAllFavorites(ctx context.Context) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps a driver-specific error to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
