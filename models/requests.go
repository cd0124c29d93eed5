// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// SignupRequest is the body of POST /signup and POST /users.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,max=120"`
	Password string `json:"password" validate:"required,maxbytes=72"`

	// IsActive defaults to true when absent.
	IsActive *bool `json:"is_active,omitempty"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
// The password is never written to logs.
func (r SignupRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", r.Email)
	if r.IsActive != nil {
		e.Bool("is_active", *r.IsActive)
	}
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
// The password is never written to logs.
func (r LoginRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", r.Email)
}

// CharacterRequest is the body of POST /characters.
type CharacterRequest struct {
	Name      string  `json:"name" validate:"required,max=250"`
	Height    *int64  `json:"height"`
	Mass      *int64  `json:"mass"`
	HairColor *string `json:"hair_color"`
	SkinColor *string `json:"skin_color"`
	EyeColor  *string `json:"eye_color"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}

// ToCharacter builds the entity once the request has been validated.
func (r CharacterRequest) ToCharacter() Character {
	name := r.Name
	return Character{
		Name:      &name,
		Height:    r.Height,
		Mass:      r.Mass,
		HairColor: r.HairColor,
		SkinColor: r.SkinColor,
		EyeColor:  r.EyeColor,
		BirthYear: r.BirthYear,
		Gender:    r.Gender,
	}
}

// PlanetRequest is the body of POST /planets.
type PlanetRequest struct {
	Name           string  `json:"name" validate:"required,max=250"`
	RotationPeriod *int64  `json:"rotation_period"`
	OrbitalPeriod  *int64  `json:"orbital_period"`
	Diameter       *int64  `json:"diameter"`
	Climate        *string `json:"climate"`
	Gravity        *string `json:"gravity"`
	Terrain        *string `json:"terrain"`
	SurfaceWater   *string `json:"surface_water"`
	Population     *int64  `json:"population"`
}

// ToPlanet builds the entity once the request has been validated.
func (r PlanetRequest) ToPlanet() Planet {
	name := r.Name
	return Planet{
		Name:           &name,
		RotationPeriod: r.RotationPeriod,
		OrbitalPeriod:  r.OrbitalPeriod,
		Diameter:       r.Diameter,
		Climate:        r.Climate,
		Gravity:        r.Gravity,
		Terrain:        r.Terrain,
		SurfaceWater:   r.SurfaceWater,
		Population:     r.Population,
	}
}

// FavoriteRequest is the body of POST /favorites. All fields are optional at
// the decoding stage; the favorite rules are checked by the service.
type FavoriteRequest struct {
	UserID      *int64 `json:"user_id,omitempty"`
	CharacterID *int64 `json:"character_id,omitempty"`
	PlanetID    *int64 `json:"planet_id,omitempty"`
}
