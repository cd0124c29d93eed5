// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// starwars-blog server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings used by the API client (cmd/client).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// LogLevel is the minimal zerolog level emitted ("debug", "info", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control
// authentication and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used when hashing user passwords.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS (or PORT)
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. PostgreSQL URLs
	// ("postgres://..." or "postgresql://...") select the pgx driver,
	// anything else is treated as a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI (or DATABASE_URL)
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the outbound API client.
type Adapter struct {
	// HTTPAddress is the base URL of the server the client talks to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent on authenticated requests, as printed
	// by the login command.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields receive defaults before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
