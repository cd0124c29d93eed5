// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// CreateFavorite checks, in order:
//  1. an identical (user_id, character_id, planet_id) favorite → store.ErrFavoriteAlreadyExists
//  2. no user_id → ErrNoUserSelected
//  3. neither character_id nor planet_id → ErrNoItemSelected
//  4. both character_id and planet_id → ErrMultipleItemsSelected
//
// and then inserts. A reference to a missing user, character or planet
// surfaces as store.ErrReferenceNotFound; a duplicate inserted concurrently
// as store.ErrFavoriteAlreadyExists.
func (s *favoriteService) CreateFavorite(ctx context.Context, request models.FavoriteRequest) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	favorite := models.Favorite{
		CharacterID: request.CharacterID,
		PlanetID:    request.PlanetID,
	}

	// a row without user_id cannot exist, so the lookup needs one
	if request.UserID != nil {
		favorite.UserID = *request.UserID

		_, err := s.favoriteRepository.FindFavorite(ctx, favorite)
		switch {
		case err == nil:
			log.Warn().Int64("user_id", favorite.UserID).Msg("favorite already exists")
			return models.Favorite{}, store.ErrFavoriteAlreadyExists
		case !errors.Is(err, store.ErrFavoriteNotFound):
			return models.Favorite{}, fmt.Errorf("error checking favorite: %w", err)
		}
	}

	switch {
	case request.UserID == nil:
		return models.Favorite{}, ErrNoUserSelected
	case request.CharacterID == nil && request.PlanetID == nil:
		return models.Favorite{}, ErrNoItemSelected
	case request.CharacterID != nil && request.PlanetID != nil:
		return models.Favorite{}, ErrMultipleItemsSelected
	}

	created, err := s.favoriteRepository.CreateFavorite(ctx, favorite)
	if err != nil {
		log.Err(err).Int64("user_id", favorite.UserID).Msg("favorite creation ended with error")
		return models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.ID).Msg("favorite created")
	return created, nil
}

func (s *favoriteService) GetFavorite(ctx context.Context, id int64) (models.Favorite, error) {
	favorite, err := s.favoriteRepository.GetFavoriteByID(ctx, id)
	if err != nil {
		return models.Favorite{}, fmt.Errorf("error getting favorite %d: %w", id, err)
	}
	return favorite, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepository.GetAllFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}
	return favorites, nil
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, id int64) error {
	if err := s.favoriteRepository.DeleteFavorite(ctx, id); err != nil {
		return fmt.Errorf("error deleting favorite %d: %w", id, err)
	}
	return nil
}
