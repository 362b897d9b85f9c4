// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/client"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/tui"
	"github.com/MKhiriev/go-draft-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("draft-keeper-client").Fatal().Err(err).Msg("error getting configs")
	}

	// stdout belongs to the terminal UI
	log := logger.NewClientLogger("draft-keeper-client", cfg.Log.FilePath)
	log.Info().Str("build", buildInfo.BuildVersion()).Msg("starting client")

	recordAdapter, err := adapter.NewHTTPRecordAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create records adapter")
	}

	services := service.NewClientServices(recordAdapter, *cfg, log)
	ui := tui.New(services, buildInfo, log)

	if err = client.NewApp(services, ui, log).Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
