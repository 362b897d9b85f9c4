// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

type ClientServices struct {
	EditorService EditorService
	RefreshJob    RefreshJob
}

func NewClientServices(recordAdapter adapter.RecordAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		EditorService: NewEditorService(recordAdapter, cfg.Autosave, logger),
		RefreshJob:    NewRefreshJob(cfg.Workers.RefreshInterval, cfg.Autosave.SaveTimeout, logger),
	}
}
