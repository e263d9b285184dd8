// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/utils"
	"github.com/MKhiriev/go-campus-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs and verifies HS256 JWTs under a secret fixed at
// construction.
type tokenService struct {
	// signKey is a private copy of the configured secret.
	signKey []byte

	// issuer is the "iss" claim written into and required from every token.
	issuer string

	// duration is the lifetime of an issued token.
	duration time.Duration

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the token settings in cfg.
// The sign key is copied, so later changes to cfg have no effect.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyNotSpecified
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}

	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &tokenService{
		signKey:  []byte(cfg.TokenSignKey),
		issuer:   issuer,
		duration: duration,
		now:      time.Now,
		logger:   logger,
	}, nil
}

// Sign issues a token carrying claims. It performs no I/O.
func (s *tokenService) Sign(ctx context.Context, claims models.Claims) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims, s.issuer, s.now(), s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Sign").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates tokenString and returns its claims and expiry.
//
// Every failure wraps [ErrTokenRejected]; an expired but otherwise valid token
// additionally wraps [ErrTokenExpired], anything else [ErrTokenInvalid].
// The signature is checked before expiry, so a forged expired token is
// reported as invalid.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now())
	if err != nil {
		reason := ErrTokenInvalid
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = ErrTokenExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenRejected, reason)
	}

	return token, nil
}
