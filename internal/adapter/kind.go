// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"
)

// Kind names a collection of the API; its value is the URL path segment.
type Kind string

const (
	KindUsers      Kind = "users"
	KindCharacters Kind = "characters"
	KindPlanets    Kind = "planets"
	KindFavorites  Kind = "favorites"
)

// ParseKind accepts the collection name case-insensitively, singular or plural.
func ParseKind(s string) (Kind, error) {
	switch k := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"); k {
	case "user":
		return KindUsers, nil
	case "character":
		return KindCharacters, nil
	case "planet":
		return KindPlanets, nil
	case "favorite":
		return KindFavorites, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) collectionPath() string {
	return "/" + string(k)
}

func (k Kind) itemPath(id int64) string {
	return fmt.Sprintf("/%s/%d", k, id)
}
