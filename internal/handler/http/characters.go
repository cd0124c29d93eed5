// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.services.CharacterService.ListCharacters(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse[models.Character]{Msg: msgOK, Results: characters}, http.StatusOK)
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var request models.CharacterRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	character, err := h.services.CharacterService.CreateCharacter(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.Character]{Msg: createdMsg("Character"), Result: character}, http.StatusOK)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrCharacterNotFound)
		return
	}

	character, err := h.services.CharacterService.GetCharacter(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.Character]{Msg: msgOK, Result: character}, http.StatusOK)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrCharacterNotFound)
		return
	}

	if err := h.services.CharacterService.DeleteCharacter(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Msg: deletedMsg("Character")}, http.StatusOK)
}
