// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/starwars-blog/internal/adapter"
	"github.com/MKhiriev/starwars-blog/models"
)

const usage = `Commands:
  signup -email E -password P
  login -email E -password P            prints the access token
  profile                               requires -token or ADAPTER_TOKEN
  version
  list <kind>
  get <kind> <id>
  delete <kind> <id>
  create-user -email E -password P [-inactive]
  create-character -name N [-height H -mass M -hair-color C -skin-color C -eye-color C -birth-year Y -gender G]
  create-planet -name N [-rotation-period R -orbital-period O -diameter D -climate C -gravity G -terrain T -surface-water W -population P]
  favorite -user U (-character C | -planet P)

<kind> is one of users, characters, planets, favorites.
`

var errUsage = errors.New("invalid usage")

type commands struct {
	adapter adapter.ServerAdapter
	out     io.Writer
}

func newCommands(a adapter.ServerAdapter, out io.Writer) *commands {
	return &commands{adapter: a, out: out}
}

func (c *commands) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}

	name, rest := args[0], args[1:]
	switch name {
	case "signup":
		return c.signup(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "profile":
		return c.profile(ctx)
	case "version":
		return c.version(ctx)
	case "list":
		return c.list(ctx, rest)
	case "get":
		return c.get(ctx, rest)
	case "delete":
		return c.delete(ctx, rest)
	case "create-user":
		return c.createUser(ctx, rest)
	case "create-character":
		return c.createCharacter(ctx, rest)
	case "create-planet":
		return c.createPlanet(ctx, rest)
	case "favorite":
		return c.createFavorite(ctx, rest)
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

func (c *commands) signup(ctx context.Context, args []string) error {
	var request models.SignupRequest
	fs := newFlagSet("signup")
	fs.StringVar(&request.Email, "email", "", "user email")
	fs.StringVar(&request.Password, "password", "", "user password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	user, err := c.adapter.Signup(ctx, request)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *commands) login(ctx context.Context, args []string) error {
	var request models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&request.Email, "email", "", "user email")
	fs.StringVar(&request.Password, "password", "", "user password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	token, err := c.adapter.Login(ctx, request)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, token)
	return err
}

func (c *commands) profile(ctx context.Context) error {
	profile, err := c.adapter.Profile(ctx)
	if err != nil {
		return err
	}
	return c.print(profile)
}

func (c *commands) version(ctx context.Context) error {
	printBuildInfo(c.out)

	info, err := c.adapter.Version(ctx)
	if err != nil {
		return err
	}
	return c.print(info)
}

func (c *commands) list(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: list takes exactly one kind", errUsage)
	}
	kind, err := adapter.ParseKind(args[0])
	if err != nil {
		return err
	}

	var result any
	switch kind {
	case adapter.KindUsers:
		result, err = c.adapter.ListUsers(ctx)
	case adapter.KindCharacters:
		result, err = c.adapter.ListCharacters(ctx)
	case adapter.KindPlanets:
		result, err = c.adapter.ListPlanets(ctx)
	case adapter.KindFavorites:
		result, err = c.adapter.ListFavorites(ctx)
	}
	if err != nil {
		return err
	}
	return c.print(result)
}

func (c *commands) get(ctx context.Context, args []string) error {
	kind, id, err := parseKindAndID("get", args)
	if err != nil {
		return err
	}

	var result any
	switch kind {
	case adapter.KindUsers:
		result, err = c.adapter.GetUser(ctx, id)
	case adapter.KindCharacters:
		result, err = c.adapter.GetCharacter(ctx, id)
	case adapter.KindPlanets:
		result, err = c.adapter.GetPlanet(ctx, id)
	case adapter.KindFavorites:
		result, err = c.adapter.GetFavorite(ctx, id)
	}
	if err != nil {
		return err
	}
	return c.print(result)
}

func (c *commands) delete(ctx context.Context, args []string) error {
	kind, id, err := parseKindAndID("delete", args)
	if err != nil {
		return err
	}

	if err = c.adapter.Delete(ctx, kind, id); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "deleted %s %d\n", kind, id)
	return err
}

func (c *commands) createUser(ctx context.Context, args []string) error {
	var request models.SignupRequest
	var inactive bool
	fs := newFlagSet("create-user")
	fs.StringVar(&request.Email, "email", "", "user email")
	fs.StringVar(&request.Password, "password", "", "user password")
	fs.BoolVar(&inactive, "inactive", false, "create the user as inactive")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	active := !inactive
	request.IsActive = &active

	user, err := c.adapter.CreateUser(ctx, request)
	if err != nil {
		return err
	}
	return c.print(user)
}

func (c *commands) createCharacter(ctx context.Context, args []string) error {
	var request models.CharacterRequest
	fs := newFlagSet("create-character")
	fs.StringVar(&request.Name, "name", "", "character name")
	fs.Var(optionalInt{&request.Height}, "height", "height in centimetres")
	fs.Var(optionalInt{&request.Mass}, "mass", "mass in kilograms")
	fs.Var(optionalString{&request.HairColor}, "hair-color", "hair color")
	fs.Var(optionalString{&request.SkinColor}, "skin-color", "skin color")
	fs.Var(optionalString{&request.EyeColor}, "eye-color", "eye color")
	fs.Var(optionalString{&request.BirthYear}, "birth-year", "birth year, e.g. 19BBY")
	fs.Var(optionalString{&request.Gender}, "gender", "gender")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	character, err := c.adapter.CreateCharacter(ctx, request)
	if err != nil {
		return err
	}
	return c.print(character)
}

func (c *commands) createPlanet(ctx context.Context, args []string) error {
	var request models.PlanetRequest
	fs := newFlagSet("create-planet")
	fs.StringVar(&request.Name, "name", "", "planet name")
	fs.Var(optionalInt{&request.RotationPeriod}, "rotation-period", "rotation period in hours")
	fs.Var(optionalInt{&request.OrbitalPeriod}, "orbital-period", "orbital period in days")
	fs.Var(optionalInt{&request.Diameter}, "diameter", "diameter in kilometres")
	fs.Var(optionalString{&request.Climate}, "climate", "climate")
	fs.Var(optionalString{&request.Gravity}, "gravity", "gravity")
	fs.Var(optionalString{&request.Terrain}, "terrain", "terrain")
	fs.Var(optionalString{&request.SurfaceWater}, "surface-water", "surface water percentage")
	fs.Var(optionalInt{&request.Population}, "population", "population")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	planet, err := c.adapter.CreatePlanet(ctx, request)
	if err != nil {
		return err
	}
	return c.print(planet)
}

func (c *commands) createFavorite(ctx context.Context, args []string) error {
	var request models.FavoriteRequest
	fs := newFlagSet("favorite")
	fs.Var(optionalInt{&request.UserID}, "user", "owner user id")
	fs.Var(optionalInt{&request.CharacterID}, "character", "favorite character id")
	fs.Var(optionalInt{&request.PlanetID}, "planet", "favorite planet id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	favorite, err := c.adapter.CreateFavorite(ctx, request)
	if err != nil {
		return err
	}
	return c.print(favorite)
}

func (c *commands) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseKindAndID(command string, args []string) (adapter.Kind, int64, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("%w: %s takes a kind and an id", errUsage, command)
	}

	kind, err := adapter.ParseKind(args[0])
	if err != nil {
		return "", 0, err
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id < 1 {
		return "", 0, fmt.Errorf("%w: invalid id %q", errUsage, args[1])
	}

	return kind, id, nil
}

// optionalInt is a flag.Value that leaves its target nil until the flag is
// given.
type optionalInt struct {
	target **int64
}

func (o optionalInt) String() string {
	if o.target == nil || *o.target == nil {
		return ""
	}
	return strconv.FormatInt(**o.target, 10)
}

func (o optionalInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*o.target = &v
	return nil
}

type optionalString struct {
	target **string
}

func (o optionalString) String() string {
	if o.target == nil || *o.target == nil {
		return ""
	}
	return **o.target
}

func (o optionalString) Set(s string) error {
	*o.target = &s
	return nil
}
