// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-campus-api/internal/adapter"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/models"
)

const usage = `usage: campus-client [-token TOKEN] <command> [flags]

commands:
  register -name NAME -email EMAIL -password PASSWORD
  login    -email EMAIL -password PASSWORD
  me
  users
  version
`

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		out:     out,
		logger:  logger,
	}
}

// Run parses the global flags, then dispatches to the subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("campus-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	token := fs.String("token", "", "bearer token for protected commands")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%s", err, usage)
	}
	if *token != "" {
		a.adapter.SetToken(*token)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, usage)
	}

	command, commandArgs := rest[0], rest[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	switch command {
	case "register":
		return a.register(ctx, commandArgs)
	case "login":
		return a.login(ctx, commandArgs)
	case "me":
		return a.me(ctx)
	case "users":
		return a.users(ctx)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var req models.RegisterRequest
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "login email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: -name, -email and -password", ErrMissingFlags)
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "registered user %d (%s, %s)\n", user.ID, user.Name, user.Email)
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var req models.LoginRequest
	fs.StringVar(&req.Email, "email", "", "login email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.Email == "" || req.Password == "" {
		return fmt.Errorf("%w: -email and -password", ErrMissingFlags)
	}

	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	// the token alone, so it can be captured: export CAMPUS_TOKEN=$(campus-client login ...)
	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) me(ctx context.Context) error {
	identity, err := a.adapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "%d\t%s\n", identity.ID, identity.Email)
	return err
}

func (a *App) users(ctx context.Context) error {
	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tEMAIL")
	for _, u := range users {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.Name, u.Email)
	}
	return tw.Flush()
}

func (a *App) version(ctx context.Context) error {
	info, err := a.adapter.GetServerBuildInfo(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	_, err = fmt.Fprintln(a.out, info)
	return err
}
