// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/starwars-blog/internal/utils"
)

// auth admits requests carrying a valid "Authorization: Bearer <token>"
// header and stores the token's email under [utils.EmailCtxKey].
// Everything else is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		email, err := token.Email()
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx = context.WithValue(ctx, utils.EmailCtxKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
