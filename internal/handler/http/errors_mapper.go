// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/service"
	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/internal/validators"
	"github.com/MKhiriev/starwars-blog/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched top to bottom with errors.Is; the first hit wins.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoUserSelected, http.StatusBadRequest},
	{service.ErrNoItemSelected, http.StatusBadRequest},
	{service.ErrMultipleItemsSelected, http.StatusBadRequest},
	{store.ErrFavoriteTargetInvalid, http.StatusBadRequest},
	{utils.ErrPasswordTooLong, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrProfileNotFound, http.StatusUnauthorized},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrCharacterNotFound, http.StatusNotFound},
	{store.ErrPlanetNotFound, http.StatusNotFound},
	{store.ErrFavoriteNotFound, http.StatusNotFound},
	{store.ErrReferenceNotFound, http.StatusNotFound},
	{ErrResourceNotFound, http.StatusNotFound},

	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrFavoriteAlreadyExists, http.StatusConflict},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{validators.ErrUnsupportedType, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// resolveError returns the status code and the client-facing message for err.
// Validation failures carry their own "<field> is required" text; server
// errors never expose their cause.
func resolveError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.status >= http.StatusInternalServerError {
			break
		}
		return e.status, e.err.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err once and writes the {msg} envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := resolveError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.Response{Msg: msg}, status)
}
