// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/store"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

func (h *Handler) listPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.services.PlanetService.ListPlanets(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListResponse[models.Planet]{Msg: msgOK, Results: planets}, http.StatusOK)
}

func (h *Handler) createPlanet(w http.ResponseWriter, r *http.Request) {
	var request models.PlanetRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	planet, err := h.services.PlanetService.CreatePlanet(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.Planet]{Msg: createdMsg("Planet"), Result: planet}, http.StatusOK)
}

func (h *Handler) getPlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrPlanetNotFound)
		return
	}

	planet, err := h.services.PlanetService.GetPlanet(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ItemResponse[models.Planet]{Msg: msgOK, Result: planet}, http.StatusOK)
}

func (h *Handler) deletePlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromRequest(r)
	if !ok {
		writeError(w, r, store.ErrPlanetNotFound)
		return
	}

	if err := h.services.PlanetService.DeletePlanet(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Msg: deletedMsg("Planet")}, http.StatusOK)
}
