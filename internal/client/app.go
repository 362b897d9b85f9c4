// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/workers"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// App runs the UI with the background workers around it.
type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		ui:      ui,
		workers: workers.NewWorkers(services.RefreshJob),
		logger:  logger,
	}
}

// Run blocks until the UI exits or the process receives a termination
// signal. Workers are stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("func", "App.Run").Msg("client started")
	err := a.ui.Run(ctx)
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")

	return err
}
