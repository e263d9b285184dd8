// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/store"
	"github.com/MKhiriev/go-campus-api/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every user without credential material.
func (s *userService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return models.PublicUsers(users), nil
}
