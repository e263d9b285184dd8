// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request whose context logger writes to buf, the way
// withTraceID attaches one.
func makeRequest(method, target string, body string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		status       int
		response     string
		wantContains []string
	}{
		{
			name:     "GET 200",
			method:   http.MethodGet,
			target:   "/users",
			status:   http.StatusOK,
			response: "[]",
			wantContains: []string{
				`"method":"GET"`, `"uri":"/users"`, `"status":200`, `"duration":`, `"size":2`,
			},
		},
		{
			name:         "POST 201",
			method:       http.MethodPost,
			target:       "/students",
			status:       http.StatusCreated,
			response:     `{"id":1}`,
			wantContains: []string{`"method":"POST"`, `"status":201`, `"size":8`},
		},
		{
			name:         "DELETE 404",
			method:       http.MethodDelete,
			target:       "/students/9",
			status:       http.StatusNotFound,
			wantContains: []string{`"uri":"/students/9"`, `"status":404`, `"size":0`},
		},
		{
			name:         "query string is not logged",
			method:       http.MethodGet,
			target:       "/students?page=2&limit=5",
			status:       http.StatusOK,
			wantContains: []string{`"uri":"/students"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.response != "" {
					_, _ = w.Write([]byte(tt.response))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, "", &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusIs200(t *testing.T) {
	tests := []struct {
		name string
		next http.HandlerFunc
	}{
		{name: "body only", next: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) }},
		{name: "nothing written", next: func(w http.ResponseWriter, r *http.Request) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestHandler().withLogging(tt.next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", "", &buf))
			assert.Contains(t, buf.String(), `"status":200`)
		})
	}
}

func TestWithLogging_SecretsNotLogged(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"issued-token"}`))
	})

	req := makeRequest(http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"hunter2"}`, &buf)
	req.Header.Set("Authorization", "Bearer secret-token")
	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "secret-token")
	assert.NotContains(t, out, "issued-token")
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", "", &buf))
	})
}
