// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.services.FavoriteService.ListFavorites(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse[models.Favorite]{Msg: msgOK, Results: favorites}, http.StatusOK)
}

// createFavorite leaves every rule about the (user, character, planet)
// triple to FavoriteService; the body is only decoded here.
func (h *Handler) createFavorite(w http.ResponseWriter, r *http.Request) {
	var request models.FavoriteRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	favorite, err := h.services.FavoriteService.CreateFavorite(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.Favorite]{Msg: createdMsg("Favorite"), Result: favorite}, http.StatusOK)
}

func (h *Handler) getFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrFavoriteNotFound)
		return
	}

	favorite, err := h.services.FavoriteService.GetFavorite(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.Favorite]{Msg: msgOK, Result: favorite}, http.StatusOK)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrFavoriteNotFound)
		return
	}

	if err := h.services.FavoriteService.DeleteFavorite(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Msg: deletedMsg("Favorite")}, http.StatusOK)
}
