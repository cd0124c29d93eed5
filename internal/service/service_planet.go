// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/validators"
	"github.com/MKhiriev/starwars-blog/models"
)

type planetService struct {
	planetRepository store.PlanetRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewPlanetService(planetRepository store.PlanetRepository, validator validators.Validator, logger *logger.Logger) PlanetService {
	return &planetService{
		planetRepository: planetRepository,
		validator:        validator,
		logger:           logger,
	}
}

// CreatePlanet requires a name; every other attribute may be absent and is
// stored as NULL.
func (s *planetService) CreatePlanet(ctx context.Context, request models.PlanetRequest) (models.Planet, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Msg("invalid planet data provided")
		return models.Planet{}, err
	}

	planet, err := s.planetRepository.CreatePlanet(ctx, request.ToPlanet())
	if err != nil {
		return models.Planet{}, fmt.Errorf("planet creation ended with error: %w", err)
	}

	log.Info().Int64("id", planet.ID).Msg("planet created")
	return planet, nil
}

func (s *planetService) GetPlanet(ctx context.Context, id int64) (models.Planet, error) {
	planet, err := s.planetRepository.GetPlanetByID(ctx, id)
	if err != nil {
		return models.Planet{}, fmt.Errorf("error getting planet %d: %w", id, err)
	}
	return planet, nil
}

func (s *planetService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets, err := s.planetRepository.GetAllPlanets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing planets: %w", err)
	}
	return planets, nil
}

func (s *planetService) DeletePlanet(ctx context.Context, id int64) error {
	if err := s.planetRepository.DeletePlanet(ctx, id); err != nil {
		return fmt.Errorf("error deleting planet %d: %w", id, err)
	}
	return nil
}
