// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
)

func TestStatusText(t *testing.T) {
	savedAt := time.Date(2026, 3, 1, 9, 15, 30, 0, time.UTC)

	tests := []struct {
		name  string
		state synchronizer.State
		want  string
	}{
		{name: "fresh", state: synchronizer.State{SyncState: synchronizer.Clean}, want: "No changes"},
		{name: "clean after save", state: synchronizer.State{SyncState: synchronizer.Clean, LastSavedAt: &savedAt}, want: "All changes saved at 09:15:30"},
		{name: "dirty", state: synchronizer.State{SyncState: synchronizer.Dirty}, want: "Unsaved changes"},
		{name: "saving", state: synchronizer.State{SyncState: synchronizer.Saving}, want: "Saving…"},
		{name: "saved", state: synchronizer.State{SyncState: synchronizer.Saved}, want: "Saved"},
		{
			name:  "error",
			state: synchronizer.State{SyncState: synchronizer.Error, LastError: fmt.Errorf("save: %w", synchronizer.ErrNetwork)},
			want:  "Save failed: Server unavailable, changes are kept locally",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusText(tt.state))
			assert.Contains(t, renderStatus(tt.state), tt.want)
		})
	}
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Record was changed elsewhere, save rejected", humanizeError(fmt.Errorf("x: %w", synchronizer.ErrConflict)))
	assert.Equal(t, "Server rejected the record", humanizeError(synchronizer.ErrValidation))

	rejected := fmt.Errorf("save record: %w", fmt.Errorf("%w: %w", synchronizer.ErrValidation,
		fmt.Errorf("%w: %s", adapter.ErrBadRequest, "unknown record kind")))
	assert.Equal(t, "Server rejected the record: unknown record kind", humanizeError(rejected))
	assert.Equal(t, "Unknown record kind", humanizeError(fmt.Errorf("open: %w", service.ErrUnknownRecordKind)))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}
