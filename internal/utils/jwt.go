// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-campus-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerScheme is the only authorization scheme accepted for tokens.
const bearerScheme = "Bearer"

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// parameter is empty or zero.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// tokenClaims is the JWT payload: the identity claims next to the standard
// registered claims (iss, iat, exp).
type tokenClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWTToken creates an HMAC-SHA256 signed JWT carrying claims.
//
// The payload holds "id", "email", "iss", "iat" (issuedAt) and
// "exp" (issuedAt + tokenDuration). Timestamps are truncated to whole seconds,
// and the returned [models.Token] reports the truncated values.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.Claims{UserID: 1, Email: "a@b.com"},
//	    "campus-api", time.Now(), 7*24*time.Hour, []byte("secret"))
func GenerateJWTToken(claims models.Claims, issuer string, issuedAt time.Time, tokenDuration time.Duration, signKey []byte) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || len(signKey) == 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	payload := &tokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Claims:       claims,
		IssuedAt:     payload.IssuedAt.Time,
		ExpiresAt:    payload.ExpiresAt.Time,
		SignedString: signed,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Verification covers:
//   - algorithm pinned to HS256 (tokens declaring any other alg are rejected);
//   - HMAC signature under signKey, compared in constant time by jwt/v5;
//   - issuer equal to the expected one;
//   - presence of "exp" and now strictly before it.
//
// The returned error wraps the jwt/v5 sentinel that caused the failure, so
// callers can tell expiry (jwt.ErrTokenExpired) from everything else.
func ValidateAndParseJWTToken(tokenString string, signKey []byte, issuer string, now time.Time) (models.Token, error) {
	payload := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, payload,
		func(*jwt.Token) (any, error) {
			return signKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if payload.UserID == 0 || payload.Email == "" {
		return models.Token{}, fmt.Errorf("%w: identity claims are missing", jwt.ErrTokenInvalidClaims)
	}

	token := models.Token{
		Claims: models.Claims{
			UserID: payload.UserID,
			Email:  payload.Email,
		},
		ExpiresAt:    payload.ExpiresAt.Time,
		SignedString: tokenString,
	}
	if payload.IssuedAt != nil {
		token.IssuedAt = payload.IssuedAt.Time
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value of
// the exact form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
