// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

// ── Signup ──────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)
		assert.Equal(t, map[string]any{"email": "luke@tatooine.org", "password": "use-the-force"}, readBody(t, r))

		writeJSON(t, w, http.StatusOK, models.ItemResponse[models.User]{
			Msg:    "ok - User created",
			Result: models.User{ID: 1, Email: "luke@tatooine.org", IsActive: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Signup(context.Background(), models.SignupRequest{Email: "luke@tatooine.org", Password: "use-the-force"})

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Email: "luke@tatooine.org", IsActive: true}, got)
	assert.Empty(t, a.Token())
}

func TestSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.Response{Msg: "email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.SignupRequest{Email: "luke@tatooine.org", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "email already exists")
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Msg: "ok", AccessToken: "signed.jwt.token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.LoginRequest{Email: "luke@tatooine.org", Password: "use-the-force"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.Response{Msg: "wrong password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "luke@tatooine.org", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Response{Msg: "ok"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "luke@tatooine.org", Password: "pw"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestProfile_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer signed.jwt.token" {
			writeJSON(t, w, http.StatusUnauthorized, models.Response{Msg: "missing authorization header"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.ProfileResponse{
			Msg:        "ok",
			LoggedInAs: "luke@tatooine.org",
			Result:     models.User{ID: 1, Email: "luke@tatooine.org", IsActive: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "missing authorization header")

	a.SetToken("  signed.jwt.token\n")
	got, err := a.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "luke@tatooine.org", got.LoggedInAs)
	assert.Equal(t, int64(1), got.Result.ID)
}

// ── Resources ───────────────────────────────────────────────────────────────

func TestCreateCharacter_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/characters", r.URL.Path)
		body := readBody(t, r)
		assert.Equal(t, "Yoda", body["name"])
		assert.Equal(t, float64(66), body["height"])
		assert.Nil(t, body["mass"])

		writeJSON(t, w, http.StatusOK, models.ItemResponse[models.Character]{
			Msg:    "ok - Character created",
			Result: models.Character{ID: 3, Name: strPtr("Yoda"), Height: int64Ptr(66)},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateCharacter(context.Background(), models.CharacterRequest{Name: "Yoda", Height: int64Ptr(66)})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	require.NotNil(t, got.Height)
	assert.Equal(t, int64(66), *got.Height)
	assert.Nil(t, got.Mass)
}

func TestCreatePlanet_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.Response{Msg: "name is required"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreatePlanet(context.Background(), models.PlanetRequest{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "name is required")
}

func TestCreateFavorite_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/favorites", r.URL.Path)
		assert.Equal(t, map[string]any{"user_id": float64(1), "planet_id": float64(2)}, readBody(t, r))
		writeJSON(t, w, http.StatusOK, models.ItemResponse[models.Favorite]{
			Msg:    "ok - Favorite created",
			Result: models.Favorite{ID: 5, UserID: 1, PlanetID: int64Ptr(2)},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateFavorite(context.Background(), models.FavoriteRequest{UserID: int64Ptr(1), PlanetID: int64Ptr(2)})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Nil(t, got.CharacterID)
}

func TestCreateUser_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ItemResponse[models.User]{Result: models.User{ID: 2, Email: "vader@empire.gov"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateUser(context.Background(), models.SignupRequest{Email: "vader@empire.gov", Password: "x"})

	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/users":
			writeJSON(t, w, http.StatusOK, models.ListResponse[models.User]{Msg: "ok", Results: []models.User{{ID: 1}, {ID: 2}}})
		case "/characters":
			writeJSON(t, w, http.StatusOK, models.ListResponse[models.Character]{Msg: "ok", Results: []models.Character{}})
		case "/planets":
			writeJSON(t, w, http.StatusOK, models.ListResponse[models.Planet]{Msg: "ok", Results: []models.Planet{{ID: 1}}})
		case "/favorites":
			writeJSON(t, w, http.StatusInternalServerError, models.Response{Msg: "Internal Server Error"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	users, err := a.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	characters, err := a.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, characters)

	planets, err := a.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)

	_, err = a.ListFavorites(ctx)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/1":
			writeJSON(t, w, http.StatusOK, models.ItemResponse[models.User]{Result: models.User{ID: 1}})
		case "/characters/2":
			writeJSON(t, w, http.StatusOK, models.ItemResponse[models.Character]{Result: models.Character{ID: 2}})
		case "/planets/3":
			writeJSON(t, w, http.StatusOK, models.ItemResponse[models.Planet]{Result: models.Planet{ID: 3}})
		default:
			writeJSON(t, w, http.StatusNotFound, models.Response{Msg: "favorite not found"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	user, err := a.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	character, err := a.GetCharacter(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), character.ID)

	planet, err := a.GetPlanet(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), planet.ID)

	_, err = a.GetFavorite(ctx, 4)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "favorite not found")
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Path == "/planets/1" {
			writeJSON(t, w, http.StatusOK, models.Response{Msg: "ok - Planet deleted"})
			return
		}
		writeJSON(t, w, http.StatusNotFound, models.Response{Msg: "planet not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	require.NoError(t, a.Delete(context.Background(), KindPlanets, 1))
	assert.ErrorIs(t, a.Delete(context.Background(), KindPlanets, 2), ErrNotFound)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	info := models.BuildInfo{Version: "v1.0.0", BuildDate: "2026-10-01", BuildCommit: "abc123"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.ItemResponse[models.BuildInfo]{Msg: "ok", Result: info})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestRequest_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version request")
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:3000", "http://localhost:3000", false},
		{"no scheme", "localhost:3000", "http://localhost:3000", false},
		{"trailing slash", "http://localhost:3000/", "http://localhost:3000", false},
		{"surrounding spaces", "  localhost:3000 ", "http://localhost:3000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
