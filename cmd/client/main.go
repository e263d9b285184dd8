// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-campus-api/internal/adapter"
	"github.com/MKhiriev/go-campus-api/internal/client"
	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/logger"
)

const tokenEnv = "CAMPUS_TOKEN"

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger("campus-client").WithLevel(cfg.Log.Level)

	if cfg.Adapter.Token == "" {
		cfg.Adapter.Token = os.Getenv(tokenEnv)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
