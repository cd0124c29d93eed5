// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	buildInfo     models.BuildInfo
	healthChecker store.HealthChecker

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when set, otherwise the version
// linked into the binary.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, healthChecker store.HealthChecker, logger *logger.Logger) AppInfoService {
	info := models.BuildInfo{
		Version:     orNotAvailable(build.BuildVersion()),
		BuildDate:   orNotAvailable(build.BuildDate()),
		BuildCommit: orNotAvailable(build.BuildCommit()),
	}
	if cfg.Version != "" {
		info.Version = cfg.Version
	}

	return &appInfoService{
		buildInfo:     info,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo
}

// CheckHealth pings the database.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.healthChecker == nil {
		return nil
	}
	if err := s.healthChecker.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
