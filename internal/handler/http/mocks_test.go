// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/service"
	"github.com/MKhiriev/starwars-blog/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────
//
// Each mock implements one service interface; every method delegates to a
// function field that a test overrides as needed. Calling a method whose
// field is nil panics, which chi's Recoverer turns into a 500.

type mockAuthService struct {
	signupFn      func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	profileFn     func(ctx context.Context, email string) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Profile(ctx context.Context, email string) (models.User, error) {
	return m.profileFn(ctx, email)
}

type mockUserService struct {
	createFn func(ctx context.Context, request models.SignupRequest) (models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	listFn   func(ctx context.Context) ([]models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockUserService) CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.createFn(ctx, request)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listFn(ctx)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockCharacterService struct {
	createFn func(ctx context.Context, request models.CharacterRequest) (models.Character, error)
	getFn    func(ctx context.Context, id int64) (models.Character, error)
	listFn   func(ctx context.Context) ([]models.Character, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCharacterService) CreateCharacter(ctx context.Context, request models.CharacterRequest) (models.Character, error) {
	return m.createFn(ctx, request)
}

func (m *mockCharacterService) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	return m.getFn(ctx, id)
}

func (m *mockCharacterService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return m.listFn(ctx)
}

func (m *mockCharacterService) DeleteCharacter(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockPlanetService struct {
	createFn func(ctx context.Context, request models.PlanetRequest) (models.Planet, error)
	getFn    func(ctx context.Context, id int64) (models.Planet, error)
	listFn   func(ctx context.Context) ([]models.Planet, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockPlanetService) CreatePlanet(ctx context.Context, request models.PlanetRequest) (models.Planet, error) {
	return m.createFn(ctx, request)
}

func (m *mockPlanetService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return m.getFn(ctx, id)
}

func (m *mockPlanetService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return m.listFn(ctx)
}

func (m *mockPlanetService) DeletePlanet(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockFavoriteService struct {
	createFn func(ctx context.Context, request models.FavoriteRequest) (models.Favorite, error)
	getFn    func(ctx context.Context, id int64) (models.Favorite, error)
	listFn   func(ctx context.Context) ([]models.Favorite, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockFavoriteService) CreateFavorite(ctx context.Context, request models.FavoriteRequest) (models.Favorite, error) {
	return m.createFn(ctx, request)
}

func (m *mockFavoriteService) GetFavorite(ctx context.Context, id int64) (models.Favorite, error) {
	return m.getFn(ctx, id)
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return m.listFn(ctx)
}

func (m *mockFavoriteService) DeleteFavorite(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockAppInfoService struct {
	info      models.BuildInfo
	healthErr error
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return m.info
}

func (m *mockAppInfoService) CheckHealth(_ context.Context) error {
	return m.healthErr
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter builds the full router around svcs. Unset services get
// empty mocks so that route registration never dereferences nil.
func newTestRouter(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.CharacterService == nil {
		svcs.CharacterService = &mockCharacterService{}
	}
	if svcs.PlanetService == nil {
		svcs.PlanetService = &mockPlanetService{}
	}
	if svcs.FavoriteService == nil {
		svcs.FavoriteService = &mockFavoriteService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{}
	}
	return NewHandler(svcs, logger.Nop())
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }
