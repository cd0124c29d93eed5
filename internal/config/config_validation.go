// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] can start the
// server: a token signing key must be present, the bcrypt cost must be in
// range and the log level must be known to zerolog.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	// bcrypt.MinCost..bcrypt.MaxCost
	if cfg.App.PasswordHashCost < 4 || cfg.App.PasswordHashCost > 31 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
