// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/starwars-blog/models"
)

var (
	userColumns      = []string{"id", "email", "password_hash", "is_active"}
	characterColumns = []string{"id", "name", "height", "mass", "hair_color", "skin_color", "eye_color", "birth_year", "gender"}
	planetColumns    = []string{"id", "name", "rotation_period", "orbital_period", "diameter", "climate", "gravity", "terrain", "surface_water", "population"}
	favoriteColumns  = []string{"id", "user_id", "character_id", "planet_id"}
)

// queryBuilder renders every statement of the store with the placeholder
// format of the connected dialect ($1 for PostgreSQL, ? for SQLite).
type queryBuilder struct {
	sq sq.StatementBuilderType
}

func newQueryBuilder(dialect Dialect) queryBuilder {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		format = sq.Dollar
	}

	return queryBuilder{sq: sq.StatementBuilder.PlaceholderFormat(format)}
}

// ── generic ──────────────────────────────────────────────────────────────────

func (q queryBuilder) selectByID(table string, columns []string, id int64) (string, []any, error) {
	return q.sq.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
}

func (q queryBuilder) selectAll(table string, columns []string) (string, []any, error) {
	return q.sq.Select(columns...).From(table).OrderBy("id").ToSql()
}

func (q queryBuilder) deleteByID(table string, id int64) (string, []any, error) {
	return q.sq.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

// ── users ────────────────────────────────────────────────────────────────────

func (q queryBuilder) insertUser(user models.User) (string, []any, error) {
	return q.sq.Insert(user.TableName()).
		Columns("email", "password_hash", "is_active").
		Values(user.Email, user.PasswordHash, user.IsActive).
		Suffix("RETURNING id").
		ToSql()
}

func (q queryBuilder) selectUserByEmail(email string) (string, []any, error) {
	return q.sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// ── characters ───────────────────────────────────────────────────────────────

func (q queryBuilder) insertCharacter(c models.Character) (string, []any, error) {
	return q.sq.Insert(c.TableName()).
		Columns(characterColumns[1:]...).
		Values(c.Name, c.Height, c.Mass, c.HairColor, c.SkinColor, c.EyeColor, c.BirthYear, c.Gender).
		Suffix("RETURNING id").
		ToSql()
}

// ── planets ──────────────────────────────────────────────────────────────────

func (q queryBuilder) insertPlanet(p models.Planet) (string, []any, error) {
	return q.sq.Insert(p.TableName()).
		Columns(planetColumns[1:]...).
		Values(p.Name, p.RotationPeriod, p.OrbitalPeriod, p.Diameter, p.Climate, p.Gravity, p.Terrain, p.SurfaceWater, p.Population).
		Suffix("RETURNING id").
		ToSql()
}

// ── favorites ────────────────────────────────────────────────────────────────

func (q queryBuilder) insertFavorite(f models.Favorite) (string, []any, error) {
	return q.sq.Insert(f.TableName()).
		Columns(favoriteColumns[1:]...).
		Values(f.UserID, f.CharacterID, f.PlanetID).
		Suffix("RETURNING id").
		ToSql()
}

// selectFavoriteByTriple matches nil ids with IS NULL.
func (q queryBuilder) selectFavoriteByTriple(f models.Favorite) (string, []any, error) {
	return q.sq.Select(favoriteColumns...).
		From(f.TableName()).
		Where(sq.Eq{
			"user_id":      f.UserID,
			"character_id": valueOrNil(f.CharacterID),
			"planet_id":    valueOrNil(f.PlanetID),
		}).
		Limit(1).
		ToSql()
}

// valueOrNil unwraps an optional id so that squirrel renders NULL
// comparisons as IS NULL.
func valueOrNil(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func buildError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
