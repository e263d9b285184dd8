// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-campus-api/internal/utils"
)

// getServerVersion writes the plain-text version, or the full build info as
// JSON when the client accepts application/json.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		_, _ = utils.WriteJSON(w, info, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(info.Version))
}
