// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse[models.User]{Msg: msgOK, Results: users}, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.User]{Msg: createdMsg("User"), Result: user}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrUserNotFound)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.User]{Msg: msgOK, Result: user}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrUserNotFound)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Msg: deletedMsg("User")}, http.StatusOK)
}
