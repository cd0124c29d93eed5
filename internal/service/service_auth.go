// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/internal/validators"
	"github.com/MKhiriev/starwars-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification and the JWT token lifecycle
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// passwordHashCost is the bcrypt cost of newly stored passwords.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Signup creates a new account.
//
// Returns the persisted user or:
//   - a validation error naming the missing field.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return registerUser(ctx, a.userRepository, a.validator, a.passwordHashCost, request)
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - a validation error if email or password is missing.
//   - a wrapped store.ErrUserNotFound for an unknown email.
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Object("request", request).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, request.Password); err != nil {
		log.Warn().Err(err).Int64("id", foundUser.ID).Msg("wrong password")
		if errors.Is(err, utils.ErrPasswordMismatch) {
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, err
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the user's email.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, bad signature, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Profile resolves the email carried by a token to its user. A token that
// outlived its account yields ErrProfileNotFound.
func (a *authService) Profile(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, ErrProfileNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("error loading profile: %w", err)
	}

	return user, nil
}
