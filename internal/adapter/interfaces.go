// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the campus API.
//
// [ServerAdapter] hides the transport from the command-line client. The
// package ships an HTTP/REST implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-campus-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the campus API server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every protected request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and returns its public projection.
	Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login exchanges credentials for a bearer token. On success the token
	// is stored via SetToken and returned.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// Me returns the identity the server derives from the stored token.
	Me(ctx context.Context) (models.IdentityResponse, error)

	// ListUsers returns every registered user. Requires a token.
	ListUsers(ctx context.Context) ([]models.PublicUser, error)

	// GetServerBuildInfo returns the version, build date and commit of the
	// server binary.
	GetServerBuildInfo(ctx context.Context) (models.BuildInfo, error)
}
