// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/store"
)

// Services aggregates every service used by the HTTP handlers.
type Services struct {
	TokenService          TokenService
	RegistrationService   RegistrationService
	AuthenticationService AuthenticationService
	UserService           UserService
	StudentService        StudentService
	AppInfoService        AppInfoService
}

// NewServices wires the services over storages. The token secret is read from
// cfg once, here.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TokenService:          tokenService,
		RegistrationService:   NewRegistrationService(storages.UserRepository, logger),
		AuthenticationService: NewAuthenticationService(storages.UserRepository, tokenService, logger),
		UserService:           NewUserService(storages.UserRepository, logger),
		StudentService:        NewStudentService(storages.StudentRepository, logger),
		AppInfoService:        appInfoService,
	}, nil
}
