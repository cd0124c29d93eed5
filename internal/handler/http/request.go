// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const msgOK = "ok"

func createdMsg(kind string) string {
	return fmt.Sprintf("ok - %s created", kind)
}

func deletedMsg(kind string) string {
	return fmt.Sprintf("ok - %s deleted", kind)
}

// decodeJSON reads the request body into dst. An empty or malformed body
// yields ErrInvalidJSON.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// idFromRequest parses the {id} route parameter. Routes only match digits,
// so a failure means the value does not fit into int64.
func idFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
