// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		middleware.StripSlashes,
		h.withTraceID,
		h.withLogging,
		withMetrics,
	)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getBuildInfo)
		r.Get("/healthz", h.healthz)

		// routes without authorization
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)

		r.With(h.auth).Get("/profile", h.profile)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{id:[0-9]+}", h.getUser)
			r.Delete("/{id:[0-9]+}", h.deleteUser)
		})

		r.Route("/characters", func(r chi.Router) {
			r.Get("/", h.listCharacters)
			r.Post("/", h.createCharacter)
			r.Get("/{id:[0-9]+}", h.getCharacter)
			r.Delete("/{id:[0-9]+}", h.deleteCharacter)
		})

		r.Route("/planets", func(r chi.Router) {
			r.Get("/", h.listPlanets)
			r.Post("/", h.createPlanet)
			r.Get("/{id:[0-9]+}", h.getPlanet)
			r.Delete("/{id:[0-9]+}", h.deletePlanet)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.listFavorites)
			r.Post("/", h.createFavorite)
			r.Get("/{id:[0-9]+}", h.getFavorite)
			r.Delete("/{id:[0-9]+}", h.deleteFavorite)
		})
	})

	return router
}
