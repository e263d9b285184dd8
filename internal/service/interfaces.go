// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-campus-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed session tokens. Implementations are
// stateless and safe for concurrent use.
type TokenService interface {
	// Sign issues a token for claims expiring one token duration from now.
	Sign(ctx context.Context, claims models.Claims) (models.Token, error)

	// Verify checks tokenString and returns the decoded token. Failures wrap
	// ErrTokenRejected together with ErrTokenInvalid or ErrTokenExpired.
	Verify(ctx context.Context, tokenString string) (models.Token, error)
}

// RegistrationService creates new credentials.
type RegistrationService interface {
	Register(ctx context.Context, name, email, password string) (models.PublicUser, error)
}

// AuthenticationService checks credentials and issues tokens.
type AuthenticationService interface {
	Login(ctx context.Context, email, password string) (models.Token, error)
}

// UserService exposes read access to registered users.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.PublicUser, error)
}

// StudentService manages student resources.
type StudentService interface {
	CreateStudent(ctx context.Context, student models.Student) (models.Student, error)
	ListStudents(ctx context.Context, opts models.ListOptions) ([]models.Student, error)
	GetStudent(ctx context.Context, id int64, includeCourse bool) (models.Student, error)
	UpdateStudent(ctx context.Context, id int64, update models.StudentUpdate, includeCourse bool) (models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	// GetBuildInfo returns the version, build date and commit of the server.
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
