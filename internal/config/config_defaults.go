// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHTTPAddress    = "0.0.0.0:3000"
	DefaultDSN            = "file:/tmp/starwars-blog.db"
	DefaultTokenIssuer    = "starwars-blog"
	DefaultTokenDuration  = time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultAdapterAddress = "http://localhost:3000"
	DefaultAdapterTimeout = 10 * time.Second
)

// applyDefaults fills every zero-valued setting that has a sensible default.
// TokenSignKey has none and is checked by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
}
