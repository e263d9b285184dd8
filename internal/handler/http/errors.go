// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrTokenMissing is raised by the auth middleware when the request has no
	// "Authorization" header or the header is not of the form "Bearer <token>".
	ErrTokenMissing = errors.New("access token is missing")

	// ErrInvalidJSON is raised when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is raised when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidGzip is raised when a body sent with "Content-Encoding: gzip"
	// has no valid gzip header.
	ErrInvalidGzip = errors.New("invalid gzip body")
)
