// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/starwars-blog/internal/metrics"
)

const unmatchedRoute = "unmatched"

// withMetrics records request count, latency and in-flight gauge. Requests
// are labelled with the chi route pattern, known only after routing.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		mw := newResponseWriter(w)
		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(mw.Status()), time.Since(start))
	})
}
