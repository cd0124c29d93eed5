// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/service"
	"github.com/MKhiriev/starwars-blog/models"
)

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
}

// TestInit_Routing checks matching only: every registered route answers
// with something other than the router's own 404/405.
func TestInit_Routing(t *testing.T) {
	svcs := &service.Services{
		UserService: &mockUserService{
			listFn:   func(context.Context) ([]models.User, error) { return []models.User{}, nil },
			getFn:    func(context.Context, int64) (models.User, error) { return models.User{}, nil },
			deleteFn: func(context.Context, int64) error { return nil },
		},
		CharacterService: &mockCharacterService{
			listFn: func(context.Context) ([]models.Character, error) { return []models.Character{}, nil },
		},
		PlanetService: &mockPlanetService{
			listFn: func(context.Context) ([]models.Planet, error) { return []models.Planet{}, nil },
		},
		FavoriteService: &mockFavoriteService{
			listFn: func(context.Context) ([]models.Favorite, error) { return []models.Favorite{}, nil },
		},
	}
	router := newTestRouter(t, svcs).Init()

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{"list users", http.MethodGet, "/users", http.StatusOK, "ok"},
		{"trailing slash", http.MethodGet, "/users/", http.StatusOK, "ok"},
		{"get user", http.MethodGet, "/users/7", http.StatusOK, "ok"},
		{"delete user trailing slash", http.MethodDelete, "/users/7/", http.StatusOK, "ok - User deleted"},
		{"list characters", http.MethodGet, "/characters", http.StatusOK, "ok"},
		{"list planets", http.MethodGet, "/planets", http.StatusOK, "ok"},
		{"list favorites", http.MethodGet, "/favorites", http.StatusOK, "ok"},

		{"non-numeric id", http.MethodGet, "/planets/abc", http.StatusNotFound, ErrResourceNotFound.Error()},
		{"negative id", http.MethodGet, "/characters/-1", http.StatusNotFound, ErrResourceNotFound.Error()},
		{"id overflows int64", http.MethodGet, "/users/99999999999999999999", http.StatusNotFound, "user not found"},
		{"unknown path", http.MethodGet, "/starships", http.StatusNotFound, ErrResourceNotFound.Error()},
		{"root", http.MethodGet, "/", http.StatusNotFound, ErrResourceNotFound.Error()},

		{"put on collection", http.MethodPut, "/planets", http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error()},
		{"delete on collection", http.MethodDelete, "/users", http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error()},
		{"post on item", http.MethodPost, "/favorites/1", http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error()},
		{"get on signup", http.MethodGet, "/signup", http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error()},
		{"post on profile", http.MethodPost, "/profile", http.StatusMethodNotAllowed, ErrMethodNotAllowed.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, router, tt.method, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, body["msg"])
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(traceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-client", rec.Header().Get(traceIDHeader))
}

func TestInit_Metrics(t *testing.T) {
	router := newTestRouter(t, &service.Services{}).Init()

	// produce at least one sample
	serve(t, router, http.MethodGet, "/version", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/version"`)
}

// ─────────────────────────────────────────────
// version / healthz
// ─────────────────────────────────────────────

func TestGetBuildInfo(t *testing.T) {
	info := models.BuildInfo{Version: "v1.0.0", BuildDate: "2026-10-01", BuildCommit: "abc123"}
	router := newTestRouter(t, &service.Services{AppInfoService: &mockAppInfoService{info: info}}).Init()

	rec, body := serve(t, router, http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["msg"])
	assert.Equal(t, map[string]any{
		"version":      "v1.0.0",
		"build_date":   "2026-10-01",
		"build_commit": "abc123",
	}, body["result"])
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &service.Services{AppInfoService: &mockAppInfoService{}}).Init()
	rec, body := serve(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["msg"])

	down := &mockAppInfoService{healthErr: errors.New("connection refused")}
	router = newTestRouter(t, &service.Services{AppInfoService: down}).Init()
	rec, body = serve(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, body["msg"], "refused")
}
