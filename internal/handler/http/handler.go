// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	signer   *utils.Signer

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Bool("signing", appCfg.HashKey != "").Msg("http handler created")
	return &Handler{
		services:       services,
		signer:         utils.NewSigner(appCfg.HashKey),
		requestTimeout: serverCfg.RequestTimeout,
		logger:         logger,
	}
}
