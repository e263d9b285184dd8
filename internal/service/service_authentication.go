// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/store"
	"github.com/MKhiriev/go-campus-api/internal/utils"
	"github.com/MKhiriev/go-campus-api/internal/validators"
	"github.com/MKhiriev/go-campus-api/models"
)

// dummyPasswordHash is compared against on the unknown-email path so that it
// costs one bcrypt comparison, the same as a wrong password.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("campus-api/unknown-user")
	return hash
})

type authenticationService struct {
	userRepository store.UserRepository
	tokenService   TokenService
	validator      validators.Validator

	logger *logger.Logger
}

// NewAuthenticationService constructs an [AuthenticationService] that looks
// users up in userRepository and issues tokens through tokenService.
func NewAuthenticationService(userRepository store.UserRepository, tokenService TokenService, logger *logger.Logger) AuthenticationService {
	return &authenticationService{
		userRepository: userRepository,
		tokenService:   tokenService,
		validator:      validators.NewInputValidator(),
		logger:         logger,
	}
}

// Login checks email and password and issues a token for the matching user.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
// Nothing is stored on success.
func (s *authenticationService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.LoginRequest{Email: email, Password: password}); err != nil {
		log.Debug().Err(err).Str("func", "*authenticationService.Login").Msg("required fields are missing")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = utils.CheckPassword(dummyPasswordHash(), password)
			log.Debug().Str("func", "*authenticationService.Login").Msg("unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authenticationService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Int64("user_id", user.UserID).Str("func", "*authenticationService.Login").Msg("wrong password")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("user_id", user.UserID).Str("func", "*authenticationService.Login").Msg("stored password hash is unusable")
		return models.Token{}, fmt.Errorf("error checking password: %w", err)
	}

	token, err := s.tokenService.Sign(ctx, models.Claims{UserID: user.UserID, Email: user.Email})
	if err != nil {
		return models.Token{}, err
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	return token, nil
}
