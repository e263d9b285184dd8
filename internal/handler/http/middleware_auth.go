// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-campus-api/internal/utils"
	"github.com/MKhiriev/go-campus-api/models"
)

// auth is an HTTP middleware that gates a route behind a valid bearer token.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.TokenService.Verify] and, on success, attaches the verified
// identity to the request context as a [models.AuthContext] (see
// [utils.WithAuthContext]) before delegating to the next handler.
//
// Rejections never reach the next handler:
//   - no header, or a header not of the form "Bearer <token>" → 401
//     ([ErrTokenMissing]);
//   - any verification failure, expired or invalid alike → 403
//     ([service.ErrTokenRejected]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, ErrTokenMissing)
			return
		}

		ctx := r.Context()
		token, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = utils.WithAuthContext(ctx, models.NewAuthContext(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
