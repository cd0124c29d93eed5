// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Planet is a world of the Star Wars universe. Every attribute except ID is
// optional; absent values are serialized as JSON null.
type Planet struct {
	ID             int64   `json:"id"`
	Name           *string `json:"name"`
	RotationPeriod *int64  `json:"rotation_period"`
	OrbitalPeriod  *int64  `json:"orbital_period"`
	Diameter       *int64  `json:"diameter"`
	Climate        *string `json:"climate"`
	Gravity        *string `json:"gravity"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *string `json:"surface_water"`
	Population     *int64  `json:"population"`
}

// TableName returns the name of the database table
// associated with the Planet model.
func (p Planet) TableName() string {
	return "planets"
}
