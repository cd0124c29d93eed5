// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/service"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Object("signup", request).Msg("received signup request")

	user, err := h.services.AuthService.Signup(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.User]{Msg: createdMsg("User"), Result: user}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Object("login", request).Msg("received login request")

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.ID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{Msg: msgOK, AccessToken: token.SignedString}, http.StatusOK)
}

// profile expects the auth middleware to have stored the caller's email.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, ok := utils.GetEmailFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.Profile(ctx, email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Msg: msgOK, LoggedInAs: email, Result: user}, http.StatusOK)
}
