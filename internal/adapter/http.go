// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme
// defaults to http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// request prepares a call carrying the bearer token when one is stored.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

func (h *httpServerAdapter) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return create[models.SignupRequest, models.User](ctx, h, "/signup", request)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("login: server returned no access token")
	}

	h.SetToken(result.AccessToken)
	h.logger.Debug().Str("email", request.Email).Msg("logged in")
	return result.AccessToken, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var result models.ProfileResponse

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return create[models.SignupRequest, models.User](ctx, h, KindUsers.collectionPath(), request)
}

func (h *httpServerAdapter) CreateCharacter(ctx context.Context, request models.CharacterRequest) (models.Character, error) {
	return create[models.CharacterRequest, models.Character](ctx, h, KindCharacters.collectionPath(), request)
}

func (h *httpServerAdapter) CreatePlanet(ctx context.Context, request models.PlanetRequest) (models.Planet, error) {
	return create[models.PlanetRequest, models.Planet](ctx, h, KindPlanets.collectionPath(), request)
}

func (h *httpServerAdapter) CreateFavorite(ctx context.Context, request models.FavoriteRequest) (models.Favorite, error) {
	return create[models.FavoriteRequest, models.Favorite](ctx, h, KindFavorites.collectionPath(), request)
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, h, KindUsers)
}

func (h *httpServerAdapter) ListCharacters(ctx context.Context) ([]models.Character, error) {
	return list[models.Character](ctx, h, KindCharacters)
}

func (h *httpServerAdapter) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	return list[models.Planet](ctx, h, KindPlanets)
}

func (h *httpServerAdapter) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return list[models.Favorite](ctx, h, KindFavorites)
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	return get[models.User](ctx, h, KindUsers, id)
}

func (h *httpServerAdapter) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	return get[models.Character](ctx, h, KindCharacters, id)
}

func (h *httpServerAdapter) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	return get[models.Planet](ctx, h, KindPlanets, id)
}

func (h *httpServerAdapter) GetFavorite(ctx context.Context, id int64) (models.Favorite, error) {
	return get[models.Favorite](ctx, h, KindFavorites, id)
}

func (h *httpServerAdapter) Delete(ctx context.Context, kind Kind, id int64) error {
	resp, err := h.request(ctx).Delete(kind.itemPath(id))
	if err != nil {
		return fmt.Errorf("delete %s request: %w", kind, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfo, error) {
	var result models.ItemResponse[models.BuildInfo]

	resp, err := h.request(ctx).
		SetResult(&result).
		Get("/version")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return result.Result, nil
}

func create[Req, T any](ctx context.Context, h *httpServerAdapter, path string, request Req) (T, error) {
	var result models.ItemResponse[T]

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&result).
		Post(path)
	if err != nil {
		return result.Result, fmt.Errorf("create request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result.Result, err
	}

	return result.Result, nil
}

func list[T any](ctx context.Context, h *httpServerAdapter, kind Kind) ([]T, error) {
	var result models.ListResponse[T]

	resp, err := h.request(ctx).
		SetResult(&result).
		Get(kind.collectionPath())
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Results, nil
}

func get[T any](ctx context.Context, h *httpServerAdapter, kind Kind, id int64) (T, error) {
	var result models.ItemResponse[T]

	resp, err := h.request(ctx).
		SetResult(&result).
		Get(kind.itemPath(id))
	if err != nil {
		return result.Result, fmt.Errorf("get %s %d request: %w", kind, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result.Result, err
	}

	return result.Result, nil
}
