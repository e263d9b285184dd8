// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("users"))
	})
	router.Post("/students", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Get("/students", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/students/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "GET /users passes through", method: http.MethodGet, path: "/users", wantStatus: http.StatusOK},
		{name: "POST /students passes through", method: http.MethodPost, path: "/students", wantStatus: http.StatusCreated},
		{name: "GET /students passes through", method: http.MethodGet, path: "/students", wantStatus: http.StatusOK},
		{name: "DELETE /students/1 passes through", method: http.MethodDelete, path: "/students/1", wantStatus: http.StatusOK},
		{name: "POST /users is 404", method: http.MethodPost, path: "/users", wantStatus: http.StatusNotFound},
		{name: "PATCH /students is 404", method: http.MethodPatch, path: "/students", wantStatus: http.StatusNotFound},
		{name: "GET /students/1 is 404", method: http.MethodGet, path: "/students/1", wantStatus: http.StatusNotFound},
		{name: "unknown path is 404", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_WrongMethodBodyIsJSON(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/users", nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"Not found."}`, rr.Body.String())
		})
	}
}

func TestCheckHTTPMethod_AppRouter(t *testing.T) {
	h := newTestHandler()

	rr := serve(t, h, http.MethodDelete, "/api/auth/login", nil, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, notFoundMessage, errorMessage(t, rr))
}
