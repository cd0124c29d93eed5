// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/models"
)

type planetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlanetRepository constructs a [PlanetRepository] backed by db.
func NewPlanetRepository(db *DB, logger *logger.Logger) PlanetRepository {
	logger.Debug().Msg("creating planet repository")
	return &planetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *planetRepository) CreatePlanet(ctx context.Context, planet models.Planet) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertPlanet(planet)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.CreatePlanet").Msg("error building sql query")
		return models.Planet{}, buildError(err)
	}

	id, err := r.db.insertRow(ctx, planet.TableName(), query, args, "*planetRepository.CreatePlanet", func(ErrorClass) error {
		return nil
	})
	if err != nil {
		return models.Planet{}, err
	}

	planet.ID = id
	return planet, nil
}

func (r *planetRepository) GetPlanetByID(ctx context.Context, id int64) (models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectByID(models.Planet{}.TableName(), planetColumns, id)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.GetPlanetByID").Msg("error building sql query")
		return models.Planet{}, buildError(err)
	}

	var planet models.Planet
	err = r.db.queryRow(ctx, planet.TableName(), query, args, ErrPlanetNotFound, "*planetRepository.GetPlanetByID", func(row rowScanner) error {
		return scanPlanet(row, &planet)
	})
	if err != nil {
		return models.Planet{}, err
	}

	return planet, nil
}

func (r *planetRepository) GetAllPlanets(ctx context.Context) ([]models.Planet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectAll(models.Planet{}.TableName(), planetColumns)
	if err != nil {
		log.Err(err).Str("func", "*planetRepository.GetAllPlanets").Msg("error building sql query")
		return nil, buildError(err)
	}

	planets := make([]models.Planet, 0)
	err = r.db.queryRows(ctx, models.Planet{}.TableName(), query, args, "*planetRepository.GetAllPlanets", func(row rowScanner) error {
		var planet models.Planet
		if scanErr := scanPlanet(row, &planet); scanErr != nil {
			return scanErr
		}
		planets = append(planets, planet)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return planets, nil
}

func (r *planetRepository) DeletePlanet(ctx context.Context, id int64) error {
	return r.db.deleteRow(ctx, models.Planet{}.TableName(), id, ErrPlanetNotFound, "*planetRepository.DeletePlanet")
}

func scanPlanet(row rowScanner, p *models.Planet) error {
	return row.Scan(&p.ID, &p.Name, &p.RotationPeriod, &p.OrbitalPeriod, &p.Diameter, &p.Climate, &p.Gravity, &p.Terrain, &p.SurfaceWater, &p.Population)
}
