// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the blog REST API.
//
// [ServerAdapter] hides the transport from the command-line client. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty; non-2xx answers
// are mapped by mapHTTPError to the sentinel errors of this package, so
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401) and still print the server's message.
package adapter

import (
	"context"

	"github.com/MKhiriev/starwars-blog/models"
)

// ServerAdapter defines communication with the blog server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Signup registers a new user via POST /signup.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login exchanges credentials for an access token via POST /login. The
	// token is stored with SetToken and also returned.
	Login(ctx context.Context, request models.LoginRequest) (string, error)

	// Profile resolves the stored token via GET /profile.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error)
	CreateCharacter(ctx context.Context, request models.CharacterRequest) (models.Character, error)
	CreatePlanet(ctx context.Context, request models.PlanetRequest) (models.Planet, error)
	CreateFavorite(ctx context.Context, request models.FavoriteRequest) (models.Favorite, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	ListCharacters(ctx context.Context) ([]models.Character, error)
	ListPlanets(ctx context.Context) ([]models.Planet, error)
	ListFavorites(ctx context.Context) ([]models.Favorite, error)

	GetUser(ctx context.Context, id int64) (models.User, error)
	GetCharacter(ctx context.Context, id int64) (models.Character, error)
	GetPlanet(ctx context.Context, id int64) (models.Planet, error)
	GetFavorite(ctx context.Context, id int64) (models.Favorite, error)

	// Delete removes one item of the given kind.
	Delete(ctx context.Context, kind Kind, id int64) error

	// Version fetches the server build information.
	Version(ctx context.Context) (models.BuildInfo, error)
}
