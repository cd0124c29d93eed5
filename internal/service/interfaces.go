// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/starwars-blog/models"
)

// AuthService registers users, checks credentials and issues bearer tokens.
type AuthService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Profile(ctx context.Context, email string) (models.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CharacterService interface {
	CreateCharacter(ctx context.Context, request models.CharacterRequest) (models.Character, error)
	GetCharacter(ctx context.Context, id int64) (models.Character, error)
	ListCharacters(ctx context.Context) ([]models.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
}

type PlanetService interface {
	CreatePlanet(ctx context.Context, request models.PlanetRequest) (models.Planet, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	DeletePlanet(ctx context.Context, id int64) error
}

// FavoriteService applies the favorite rules before touching the store: no
// duplicate triple, a user is required, exactly one of character or planet.
type FavoriteService interface {
	CreateFavorite(ctx context.Context, request models.FavoriteRequest) (models.Favorite, error)
	GetFavorite(ctx context.Context, id int64) (models.Favorite, error)
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, id int64) error
}

// AppInfoService reports build metadata and liveness of the backing store.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
	CheckHealth(ctx context.Context) error
}
