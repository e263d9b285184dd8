// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] for the server at cfg.HTTPAddress. A bare "host:port" is
// treated as http. cfg.Token, when set, is stored as the initial token.
//
// Returns an error if the address is empty or not a valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. Surrounding whitespace is trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter] via POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	h.logger.Debug().Int64("user_id", result.User.ID).Msg("registered")
	return result.User, nil
}

// Login implements [ServerAdapter] via POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

// Me implements [ServerAdapter] via GET /api/auth/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.IdentityResponse, error) {
	var identity models.IdentityResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return identity, err
	}

	resp, err := req.SetResult(&identity).Get("/api/auth/me")
	if err != nil {
		return identity, fmt.Errorf("me request: %w", err)
	}

	return identity, mapHTTPError(resp)
}

// ListUsers implements [ServerAdapter] via GET /users.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	var users []models.PublicUser

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetResult(&users).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// GetServerBuildInfo implements [ServerAdapter] via GET /api/version/,
// asking for the JSON form.
func (h *httpServerAdapter) GetServerBuildInfo(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return info, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrTokenNotSet
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
