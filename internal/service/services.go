// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/validators"
	"github.com/MKhiriev/starwars-blog/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	CharacterService CharacterService
	PlanetService    PlanetService
	FavoriteService  FavoriteService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, validator, cfg.App, logger),
		CharacterService: NewCharacterService(storages.CharacterRepository, validator, logger),
		PlanetService:    NewPlanetService(storages.PlanetRepository, validator, logger),
		FavoriteService:  NewFavoriteService(storages.FavoriteRepository, logger),
		AppInfoService:   NewAppInfoService(cfg.App, build, storages.HealthChecker, logger),
	}
}
