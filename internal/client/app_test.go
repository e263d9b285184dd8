// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-campus-api/internal/adapter"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/mock"
	"github.com/MKhiriev/go-campus-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	var out bytes.Buffer
	return NewApp(serverAdapter, &out, logger.Nop()), serverAdapter, &out
}

func TestRun_Register(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"}).
		Return(models.PublicUser{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

	err := app.Run(context.Background(), []string{"register", "-name", "Alice", "-email", "alice@example.com", "-password", "pw"})

	require.NoError(t, err)
	assert.Equal(t, "registered user 1 (Alice, alice@example.com)\n", out.String())
}

func TestRun_RegisterMissingFlags(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"register", "-name", "Alice"})

	assert.ErrorIs(t, err, ErrMissingFlags)
}

func TestRun_LoginPrintsToken(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "pw"}).
		Return("jwt-token", nil)

	err := app.Run(context.Background(), []string{"login", "-email", "alice@example.com", "-password", "pw"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token\n", out.String())
}

func TestRun_LoginFailure(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"login", "-email", "a@b.c", "-password", "bad"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestRun_UsersWithToken(t *testing.T) {
	app, m, out := newTestApp(t)
	gomock.InOrder(
		m.EXPECT().SetToken("jwt-token"),
		m.EXPECT().ListUsers(gomock.Any()).Return([]models.PublicUser{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		}, nil),
	)

	err := app.Run(context.Background(), []string{"-token", "jwt-token", "users"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "ID  NAME   EMAIL")
	assert.Contains(t, out.String(), "2   Bob    bob@example.com")
	assert.NotContains(t, out.String(), "password")
}

func TestRun_Me(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().Me(gomock.Any()).Return(models.IdentityResponse{ID: 4, Email: "d@x.io"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"me"}))
	assert.Equal(t, "4\td@x.io\n", out.String())
}

func TestRun_Version(t *testing.T) {
	app, m, out := newTestApp(t)
	m.EXPECT().GetServerBuildInfo(gomock.Any()).Return(models.BuildInfo{Version: "1.0.0", Date: "2026-10-01", Commit: "abc"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-01\nBuild commit: abc\n", out.String())
}

func TestRun_BadInvocation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "only token", args: []string{"-token", "x"}, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"logout"}, wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m, _ := newTestApp(t)
			m.EXPECT().SetToken(gomock.Any()).AnyTimes()

			err := app.Run(context.Background(), tt.args)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "usage:")
		})
	}
}
