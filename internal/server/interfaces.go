// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// [RunServer] blocks until SIGINT, SIGTERM or SIGQUIT is received or the
// listener fails, then shuts down gracefully. [Shutdown] stops serving and
// waits for in-flight requests.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
