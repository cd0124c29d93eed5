// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-blog/models"
)

func strPtr(v string) *string { return &v }

func TestNewQueryBuilder_Placeholders(t *testing.T) {
	pg, _, err := newQueryBuilder(DialectPostgres).selectByID("users", userColumns, 1)
	require.NoError(t, err)
	assert.Contains(t, pg, "WHERE id = $1")

	lite, _, err := newQueryBuilder(DialectSQLite).selectByID("users", userColumns, 1)
	require.NoError(t, err)
	assert.Contains(t, lite, "WHERE id = ?")
}

func TestInsertUser(t *testing.T) {
	query, args, err := newQueryBuilder(DialectPostgres).insertUser(models.User{
		Email:        "han@falcon.org",
		PasswordHash: "hash",
		IsActive:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (email,password_hash,is_active) VALUES ($1,$2,$3) RETURNING id", query)
	assert.Equal(t, []any{"han@falcon.org", "hash", true}, args)
}

func TestInsertCharacter_KeepsNullFields(t *testing.T) {
	query, args, err := newQueryBuilder(DialectSQLite).insertCharacter(models.Character{Name: strPtr("Yoda")})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO characters (name,height,mass,hair_color,skin_color,eye_color,birth_year,gender)")
	assert.Contains(t, query, "RETURNING id")
	require.Len(t, args, 8)
	assert.Equal(t, "Yoda", *args[0].(*string))
	assert.Nil(t, args[1])
}

func TestInsertPlanet(t *testing.T) {
	query, args, err := newQueryBuilder(DialectPostgres).insertPlanet(models.Planet{Name: strPtr("Hoth")})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO planets (name,rotation_period,orbital_period,diameter,climate,gravity,terrain,surface_water,population)")
	assert.Len(t, args, 9)
}

func TestSelectAll_OrderedByID(t *testing.T) {
	query, args, err := newQueryBuilder(DialectPostgres).selectAll("planets", planetColumns)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, rotation_period, orbital_period, diameter, climate, gravity, terrain, surface_water, population FROM planets ORDER BY id", query)
	assert.Empty(t, args)
}

func TestDeleteByID(t *testing.T) {
	query, args, err := newQueryBuilder(DialectSQLite).deleteByID("characters", 4)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM characters WHERE id = ?", query)
	assert.Equal(t, []any{int64(4)}, args)
}

func TestSelectFavoriteByTriple(t *testing.T) {
	tests := []struct {
		name     string
		favorite models.Favorite
		contains []string
		args     []any
	}{
		{
			name:     "character",
			favorite: models.Favorite{UserID: 1, CharacterID: int64Ptr(2)},
			contains: []string{"character_id = $1", "planet_id IS NULL", "user_id = $2"},
			args:     []any{int64(2), int64(1)},
		},
		{
			name:     "planet",
			favorite: models.Favorite{UserID: 1, PlanetID: int64Ptr(3)},
			contains: []string{"character_id IS NULL", "planet_id = $1", "user_id = $2"},
			args:     []any{int64(3), int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryBuilder(DialectPostgres).selectFavoriteByTriple(tt.favorite)
			require.NoError(t, err)

			for _, part := range tt.contains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.args, args)
		})
	}
}
