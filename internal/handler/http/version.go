// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, models.ItemResponse[models.BuildInfo]{Msg: msgOK, Result: info}, http.StatusOK)
}

// healthz answers 503 while the database cannot be reached.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteJSON(w, models.Response{Msg: "database is unreachable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.Response{Msg: msgOK}, http.StatusOK)
}
