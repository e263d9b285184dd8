// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/handler"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", cfg: config.Server{HTTPAddress: ":0"}},
		{name: "no HTTP handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())
			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestNewServer_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	s := &server{
		httpServer: newHTTPServer(h, config.Server{HTTPAddress: "127.0.0.1:-1"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	assert.Error(t, s.run(context.Background()))
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	srv := newHTTPServer(h, config.Server{ShutdownTimeout: time.Second}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- srv.serve(listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	srv.Shutdown()
	assert.NoError(t, <-done)
}
