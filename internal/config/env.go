// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// platformEnv holds the unprefixed variables set by hosting platforms
// (Heroku-style DATABASE_URL and PORT). They are used only when the
// prefixed variables are absent.
type platformEnv struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Port        int    `env:"PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var platform platformEnv
	if err := env.Parse(&platform); err != nil {
		return fmt.Errorf("error getting platform env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = platform.DatabaseURL
	}
	if cfg.Server.HTTPAddress == "" && platform.Port > 0 {
		cfg.Server.HTTPAddress = "0.0.0.0:" + strconv.Itoa(platform.Port)
	}

	return nil
}
