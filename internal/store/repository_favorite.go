// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/models"
)

// favoriteRepository is the SQL implementation of [FavoriteRepository].
//
// The favorites table enforces its invariants itself: foreign keys to
// users, characters and planets, a CHECK that exactly one target is set, and
// partial unique indexes on (user_id, character_id) and (user_id, planet_id).
// Violations of those constraints are mapped to domain errors here.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFavorite inserts favorite and returns it with the generated id.
//
// Error handling:
//   - unique violation → [ErrFavoriteAlreadyExists].
//   - foreign key violation → [ErrReferenceNotFound].
//   - check violation → [ErrFavoriteTargetInvalid].
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertFavorite(favorite)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.CreateFavorite").Msg("error building sql query")
		return models.Favorite{}, buildError(err)
	}

	id, err := r.db.insertRow(ctx, favorite.TableName(), query, args, "*favoriteRepository.CreateFavorite", func(class ErrorClass) error {
		switch class {
		case ClassUniqueViolation:
			return ErrFavoriteAlreadyExists
		case ClassForeignKeyViolation:
			return ErrReferenceNotFound
		case ClassCheckViolation:
			return ErrFavoriteTargetInvalid
		}
		return nil
	})
	if err != nil {
		return models.Favorite{}, err
	}

	favorite.ID = id
	return favorite, nil
}

func (r *favoriteRepository) GetFavoriteByID(ctx context.Context, id int64) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectByID(models.Favorite{}.TableName(), favoriteColumns, id)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.GetFavoriteByID").Msg("error building sql query")
		return models.Favorite{}, buildError(err)
	}

	var favorite models.Favorite
	err = r.db.queryRow(ctx, favorite.TableName(), query, args, ErrFavoriteNotFound, "*favoriteRepository.GetFavoriteByID", func(row rowScanner) error {
		return scanFavorite(row, &favorite)
	})
	if err != nil {
		return models.Favorite{}, err
	}

	return favorite, nil
}

func (r *favoriteRepository) FindFavorite(ctx context.Context, favorite models.Favorite) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectFavoriteByTriple(favorite)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.FindFavorite").Msg("error building sql query")
		return models.Favorite{}, buildError(err)
	}

	var found models.Favorite
	err = r.db.queryRow(ctx, favorite.TableName(), query, args, ErrFavoriteNotFound, "*favoriteRepository.FindFavorite", func(row rowScanner) error {
		return scanFavorite(row, &found)
	})
	if err != nil {
		return models.Favorite{}, err
	}

	return found, nil
}

func (r *favoriteRepository) GetAllFavorites(ctx context.Context) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectAll(models.Favorite{}.TableName(), favoriteColumns)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.GetAllFavorites").Msg("error building sql query")
		return nil, buildError(err)
	}

	favorites := make([]models.Favorite, 0)
	err = r.db.queryRows(ctx, models.Favorite{}.TableName(), query, args, "*favoriteRepository.GetAllFavorites", func(row rowScanner) error {
		var favorite models.Favorite
		if scanErr := scanFavorite(row, &favorite); scanErr != nil {
			return scanErr
		}
		favorites = append(favorites, favorite)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return favorites, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id int64) error {
	return r.db.deleteRow(ctx, models.Favorite{}.TableName(), id, ErrFavoriteNotFound, "*favoriteRepository.DeleteFavorite")
}

func scanFavorite(row rowScanner, f *models.Favorite) error {
	return row.Scan(&f.ID, &f.UserID, &f.CharacterID, &f.PlanetID)
}
