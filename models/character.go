// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Character is a person of the Star Wars universe. Every attribute except
// ID is optional; absent values are serialized as JSON null.
type Character struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Height    *int64  `json:"height"`
	Mass      *int64  `json:"mass"`
	HairColor *string `json:"hair_color"`
	SkinColor *string `json:"skin_color"`
	EyeColor  *string `json:"eye_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}
