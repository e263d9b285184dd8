// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-campus-api/internal/config"
	"github.com/MKhiriev/go-campus-api/internal/logger"
	"github.com/MKhiriev/go-campus-api/models"
)

type appInfoService struct {
	buildInfo models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an [AppInfoService] describing the binary from
// cfg. Missing build date or commit are reported as [models.NotAvailable];
// a missing version is a configuration error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if strings.TrimSpace(cfg.Version) == "" {
		return nil, ErrVersionIsNotSpecified
	}

	info := models.NewBuildInfo(cfg.Version, cfg.BuildDate, cfg.BuildCommit)
	logger.Debug().
		Str("version", info.Version).
		Str("build_date", info.Date).
		Str("build_commit", info.Commit).
		Msg("build info registered")

	return &appInfoService{
		buildInfo: info,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo
}
