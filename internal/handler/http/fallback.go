// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound replaces chi's plain-text 404 so that unknown paths, including
// item routes with a non-numeric id, answer with the JSON envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrResourceNotFound)
}

// methodNotAllowed answers a known path requested with an unregistered verb.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
