// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/internal/validators"
	"github.com/MKhiriev/starwars-blog/models"
)

type userService struct {
	userRepository   store.UserRepository
	validator        validators.Validator
	passwordHashCost int

	logger *logger.Logger
}

// NewUserService constructs the [UserService] behind the /users routes.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return registerUser(ctx, s.userRepository, s.validator, s.passwordHashCost, request)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}
	return nil
}

// registerUser validates request, rejects a taken email, hashes the password
// and persists the user. IsActive defaults to true.
//
// The email pre-check gives a clean Conflict in the common case; the unique
// index still rejects a concurrent duplicate with the same error.
func registerUser(ctx context.Context, repo store.UserRepository, validator validators.Validator, cost int, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Object("request", request).Msg("invalid signup data provided")
		return models.User{}, err
	}

	_, err := repo.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", request.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := utils.HashPassword(request.Password, cost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	user, err := repo.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: hash,
		IsActive:     isActive,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.ID).Msg("user created")
	return user, nil
}
