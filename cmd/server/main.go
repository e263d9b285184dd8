// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/handler"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/internal/server"
	"github.com/MKhiriev/go-campus-api/internal/service"
	"github.com/MKhiriev/go-campus-api/internal/store"
	"github.com/MKhiriev/go-campus-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("campus-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.Log.Level)

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	if cfg.App.Version == config.DefaultVersion && buildInfo.Version != models.NotAvailable {
		cfg.App.Version = buildInfo.Version
	}
	cfg.App.BuildDate = buildInfo.Date
	cfg.App.BuildCommit = buildInfo.Commit

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
