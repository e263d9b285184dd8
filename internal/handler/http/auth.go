// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-campus-api/internal/app"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/utils"
	"github.com/MKhiriev/go-campus-api/models"
)

const (
	registeredMessage = app.MsgUserRegistered
	loggedInMessage   = app.MsgLoginSuccessful
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.RegistrationService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, registerValidation)
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.RegisterResponse{Message: registeredMessage, User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthenticationService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, loginValidation)
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{Message: loggedInMessage, Token: token.SignedString}, http.StatusOK)
}

// me echoes the identity established by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := utils.GetAuthContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrTokenMissing)
		return
	}

	_, _ = utils.WriteJSON(w, models.IdentityResponse{ID: authCtx.Claims.UserID, Email: authCtx.Claims.Email}, http.StatusOK)
}
