// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// TUI is the terminal form client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the record list and blocks until the user quits or ctx is
// cancelled. An editor still open at that point is closed, flushing its
// draft, before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	final, err := tea.NewProgram(
		newAppModel(ctx, t.services, t.buildInfo),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()

	if m, ok := final.(appModel); ok && m.editing {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()
		if closeErr := m.editor.sync.Close(closeCtx); closeErr != nil {
			t.logger.Err(closeErr).Str("func", "TUI.Run").Msg("unsaved changes lost on exit")
		}
		m.editor.feed.stop()
		t.services.RefreshJob.Watch(nil)
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
