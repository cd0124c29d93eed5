// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/models"
)

type characterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCharacterRepository constructs a [CharacterRepository] backed by db.
func NewCharacterRepository(db *DB, logger *logger.Logger) CharacterRepository {
	logger.Debug().Msg("creating character repository")
	return &characterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *characterRepository) CreateCharacter(ctx context.Context, character models.Character) (models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.insertCharacter(character)
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.CreateCharacter").Msg("error building sql query")
		return models.Character{}, buildError(err)
	}

	// characters have no constraint with a domain meaning
	id, err := r.db.insertRow(ctx, character.TableName(), query, args, "*characterRepository.CreateCharacter", func(ErrorClass) error {
		return nil
	})
	if err != nil {
		return models.Character{}, err
	}

	character.ID = id
	return character, nil
}

func (r *characterRepository) GetCharacterByID(ctx context.Context, id int64) (models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectByID(models.Character{}.TableName(), characterColumns, id)
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.GetCharacterByID").Msg("error building sql query")
		return models.Character{}, buildError(err)
	}

	var character models.Character
	err = r.db.queryRow(ctx, character.TableName(), query, args, ErrCharacterNotFound, "*characterRepository.GetCharacterByID", func(row rowScanner) error {
		return scanCharacter(row, &character)
	})
	if err != nil {
		return models.Character{}, err
	}

	return character, nil
}

func (r *characterRepository) GetAllCharacters(ctx context.Context) ([]models.Character, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.selectAll(models.Character{}.TableName(), characterColumns)
	if err != nil {
		log.Err(err).Str("func", "*characterRepository.GetAllCharacters").Msg("error building sql query")
		return nil, buildError(err)
	}

	characters := make([]models.Character, 0)
	err = r.db.queryRows(ctx, models.Character{}.TableName(), query, args, "*characterRepository.GetAllCharacters", func(row rowScanner) error {
		var character models.Character
		if scanErr := scanCharacter(row, &character); scanErr != nil {
			return scanErr
		}
		characters = append(characters, character)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return characters, nil
}

func (r *characterRepository) DeleteCharacter(ctx context.Context, id int64) error {
	return r.db.deleteRow(ctx, models.Character{}.TableName(), id, ErrCharacterNotFound, "*characterRepository.DeleteCharacter")
}

func scanCharacter(row rowScanner, c *models.Character) error {
	return row.Scan(&c.ID, &c.Name, &c.Height, &c.Mass, &c.HairColor, &c.SkinColor, &c.EyeColor, &c.BirthYear, &c.Gender)
}
