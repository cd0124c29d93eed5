// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Favorite links a User to exactly one Character or Planet.
type Favorite struct {
	// ID is the store-generated identifier of the favorite.
	ID int64 `json:"id"`

	// UserID references the owning user. Required.
	UserID int64 `json:"user_id"`

	// CharacterID references the favorite character.
	// Set if and only if PlanetID is nil.
	CharacterID *int64 `json:"character_id"`

	// PlanetID references the favorite planet.
	// Set if and only if CharacterID is nil.
	PlanetID *int64 `json:"planet_id"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
