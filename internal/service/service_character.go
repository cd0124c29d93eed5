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

type characterService struct {
	characterRepository store.CharacterRepository
	validator           validators.Validator

	logger *logger.Logger
}

func NewCharacterService(characterRepository store.CharacterRepository, validator validators.Validator, logger *logger.Logger) CharacterService {
	return &characterService{
		characterRepository: characterRepository,
		validator:           validator,
		logger:              logger,
	}
}

func (s *characterService) CreateCharacter(ctx context.Context, request models.CharacterRequest) (models.Character, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Msg("invalid character data provided")
		return models.Character{}, err
	}

	character, err := s.characterRepository.CreateCharacter(ctx, request.ToCharacter())
	if err != nil {
		return models.Character{}, fmt.Errorf("character creation ended with error: %w", err)
	}

	log.Info().Int64("id", character.ID).Msg("character created")
	return character, nil
}

func (s *characterService) GetCharacter(ctx context.Context, id int64) (models.Character, error) {
	character, err := s.characterRepository.GetCharacterByID(ctx, id)
	if err != nil {
		return models.Character{}, fmt.Errorf("error getting character %d: %w", id, err)
	}
	return character, nil
}

func (s *characterService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	characters, err := s.characterRepository.GetAllCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing characters: %w", err)
	}
	return characters, nil
}

func (s *characterService) DeleteCharacter(ctx context.Context, id int64) error {
	if err := s.characterRepository.DeleteCharacter(ctx, id); err != nil {
		return fmt.Errorf("error deleting character %d: %w", id, err)
	}
	return nil
}
