// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

var testIssuedAt = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

// clock is a settable time source shared by a token service under test.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func newTestTokenService(t *testing.T, key string) (*tokenService, *clock) {
	t.Helper()

	svc, err := NewTokenService(config.App{TokenSignKey: key, TokenIssuer: "campus-api", TokenDuration: 7 * 24 * time.Hour}, logger.Nop())
	require.NoError(t, err)

	c := &clock{now: testIssuedAt}
	ts := svc.(*tokenService)
	ts.now = c.Now
	return ts, c
}

func TestNewTokenService(t *testing.T) {
	t.Run("missing sign key", func(t *testing.T) {
		svc, err := NewTokenService(config.App{}, logger.Nop())
		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrTokenSignKeyNotSpecified)
	})

	t.Run("defaults", func(t *testing.T) {
		svc, err := NewTokenService(config.App{TokenSignKey: "k"}, logger.Nop())
		require.NoError(t, err)
		ts := svc.(*tokenService)
		assert.Equal(t, config.DefaultTokenIssuer, ts.issuer)
		assert.Equal(t, config.DefaultTokenDuration, ts.duration)
	})

	t.Run("secret is copied", func(t *testing.T) {
		cfg := config.App{TokenSignKey: "original"}
		svc, err := NewTokenService(cfg, logger.Nop())
		require.NoError(t, err)
		cfg.TokenSignKey = "changed"
		assert.Equal(t, []byte("original"), svc.(*tokenService).signKey)
	})
}

func TestTokenService_SignVerifyRoundTrip(t *testing.T) {
	svc, _ := newTestTokenService(t, testSignKey)
	ctx := context.Background()
	claims := models.Claims{UserID: 42, Email: "ann@x.io"}

	token, err := svc.Sign(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, testIssuedAt, token.IssuedAt)
	assert.Equal(t, testIssuedAt.Add(7*24*time.Hour), token.ExpiresAt)
	assert.Len(t, strings.Split(token.SignedString, "."), 3)

	verified, err := svc.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, claims, verified.Claims)
	assert.True(t, token.ExpiresAt.Equal(verified.ExpiresAt))
}

func TestTokenService_Expiry(t *testing.T) {
	svc, c := newTestTokenService(t, testSignKey)
	ctx := context.Background()

	token, err := svc.Sign(ctx, models.Claims{UserID: 1, Email: "a@x.io"})
	require.NoError(t, err)

	c.Set(token.ExpiresAt.Add(-time.Second))
	_, err = svc.Verify(ctx, token.SignedString)
	require.NoError(t, err, "token must be valid just before expiry")

	for _, at := range []time.Time{token.ExpiresAt, token.ExpiresAt.Add(time.Hour)} {
		c.Set(at)
		_, err = svc.Verify(ctx, token.SignedString)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTokenRejected)
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.NotErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestTokenService_RejectsInvalidTokens(t *testing.T) {
	svc, _ := newTestTokenService(t, testSignKey)
	other, _ := newTestTokenService(t, "another-key")
	ctx := context.Background()

	good, err := svc.Sign(ctx, models.Claims{UserID: 1, Email: "a@x.io"})
	require.NoError(t, err)
	elevated, err := svc.Sign(ctx, models.Claims{UserID: 2, Email: "admin@x.io"})
	require.NoError(t, err)
	foreign, err := other.Sign(ctx, models.Claims{UserID: 1, Email: "a@x.io"})
	require.NoError(t, err)

	goodParts := strings.Split(good.SignedString, ".")
	elevatedParts := strings.Split(elevated.SignedString, ".")
	spliced := goodParts[0] + "." + elevatedParts[1] + "." + goodParts[2]

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id": 1, "email": "a@x.io", "iss": "campus-api", "exp": testIssuedAt.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id": 1, "email": "a@x.io", "iss": "campus-api", "exp": testIssuedAt.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "signed with another secret", token: foreign.SignedString},
		{name: "payload swapped", token: spliced},
		{name: "alg none", token: none},
		{name: "foreign algorithm", token: hs512},
		{name: "truncated", token: good.SignedString[:len(good.SignedString)-5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(ctx, tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTokenRejected)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenService_ExpiredForgeryIsInvalid(t *testing.T) {
	svc, c := newTestTokenService(t, testSignKey)
	other, _ := newTestTokenService(t, "another-key")
	ctx := context.Background()

	forged, err := other.Sign(ctx, models.Claims{UserID: 1, Email: "a@x.io"})
	require.NoError(t, err)

	c.Set(forged.ExpiresAt.Add(time.Hour))
	_, err = svc.Verify(ctx, forged.SignedString)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_ConcurrentUse(t *testing.T) {
	svc, _ := newTestTokenService(t, testSignKey)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			token, err := svc.Sign(ctx, models.Claims{UserID: id, Email: "u@x.io"})
			if err != nil {
				errs <- err
				return
			}
			verified, err := svc.Verify(ctx, token.SignedString)
			if err != nil {
				errs <- err
				return
			}
			if verified.Claims.UserID != id {
				errs <- assert.AnError
			}
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
