// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/store"
	"github.com/MKhiriev/go-campus-api/internal/utils"
	"github.com/MKhiriev/go-campus-api/internal/validators"
	"github.com/MKhiriev/go-campus-api/models"
)

type registrationService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewRegistrationService constructs a [RegistrationService] persisting users
// through userRepository.
func NewRegistrationService(userRepository store.UserRepository, logger *logger.Logger) RegistrationService {
	return &registrationService{
		userRepository: userRepository,
		validator:      validators.NewInputValidator(),
		logger:         logger,
	}
}

// Register validates the input, hashes password with bcrypt and stores the
// new user. Values are stored exactly as given; a field made only of
// whitespace counts as empty.
//
// Returns the public projection of the stored user or:
//   - ErrInvalidDataProvided if a field is empty or the password is longer
//     than bcrypt accepts.
//   - ErrEmailAlreadyExists if the email is taken, including when a
//     concurrent registration wins the race and the store rejects the insert.
func (s *registrationService) Register(ctx context.Context, name, email, password string) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	err := s.validator.Validate(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		log.Debug().Err(err).Str("func", "*registrationService.Register").Msg("required fields are missing")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err = s.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*registrationService.Register").Msg("email already exists")
		return models.PublicUser{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*registrationService.Register").Msg("error checking email")
		return models.PublicUser{}, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.PublicUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("func", "*registrationService.Register").Msg("error hashing password")
		return models.PublicUser{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Str("func", "*registrationService.Register").Msg("email taken by a concurrent registration")
			return models.PublicUser{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*registrationService.Register").Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created.Public(), nil
}
