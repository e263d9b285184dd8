// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-campus-api/internal/app"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/service"
	"github.com/MKhiriev/go-campus-api/internal/utils"
)

const (
	internalErrorMessage = app.MsgInternalServerError
	notFoundMessage      = app.MsgNotFound
)

// errorMapping binds an error kind to the status and client-facing message
// it is rendered with.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins. Anything that
// matches no entry is an internal error.
var errorMappings = []errorMapping{
	{target: ErrTokenMissing, status: http.StatusUnauthorized, message: app.MsgTokenRequired},
	{target: service.ErrTokenRejected, status: http.StatusForbidden, message: app.MsgTokenInvalidOrExpired},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: app.MsgInvalidCredentials},
	{target: service.ErrEmailAlreadyExists, status: http.StatusConflict, message: app.MsgUserAlreadyExists},
	{target: service.ErrStudentNotFound, status: http.StatusNotFound, message: notFoundMessage},
	{target: ErrInvalidJSON, status: http.StatusBadRequest, message: app.MsgInvalidJSON},
	{target: ErrInvalidGzip, status: http.StatusBadRequest, message: app.MsgInvalidGzip},
	{target: ErrInvalidID, status: http.StatusBadRequest, message: app.MsgInvalidID},
	{target: utils.ErrPasswordTooLong, status: http.StatusBadRequest, message: app.MsgPasswordTooLong},
	{target: service.ErrCourseNotFound, status: http.StatusBadRequest, message: app.MsgCourseDoesNotExist},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: app.MsgInvalidDataProvided},
}

// Endpoint-specific wording for validation failures.
var (
	registerValidation = errorMapping{
		target: service.ErrInvalidDataProvided, status: http.StatusBadRequest,
		message: app.MsgRegisterFieldsRequired,
	}
	loginValidation = errorMapping{
		target: service.ErrInvalidDataProvided, status: http.StatusBadRequest,
		message: app.MsgLoginFieldsRequired,
	}
	studentValidation = errorMapping{
		target: service.ErrInvalidDataProvided, status: http.StatusBadRequest,
		message: app.MsgStudentFieldsRequired,
	}
)

// errorResponse returns the status and message for err. An override
// replaces the message of the table entry with the same target, so more
// specific entries listed earlier still take precedence.
func errorResponse(err error, overrides ...errorMapping) (int, string) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		for _, o := range overrides {
			if o.target == m.target {
				return o.status, o.message
			}
		}
		return m.status, m.message
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// writeError renders err as a JSON error body. Internal details are logged,
// never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, overrides ...errorMapping) {
	status, message := errorResponse(err, overrides...)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
