// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/handler/http"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
