// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-draft-keeper/internal/clock"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memStore echoes saved records back with an id and the next version.
type memStore struct {
	mu    sync.Mutex
	saved []models.Record
	err   error
}

func (s *memStore) FetchOne(context.Context, string) (models.Record, error) {
	return models.Record{}, synchronizer.ErrNotFound
}

func (s *memStore) SaveOne(_ context.Context, r models.Record) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return models.Record{}, s.err
	}
	out := r.Clone()
	if out.ID == "" {
		out.ID = "rec-1"
	}
	out.Version++
	s.saved = append(s.saved, out)
	return out, nil
}

func (s *memStore) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func newTestSync(t *testing.T, store synchronizer.RemoteRecordStore, kind models.RecordKind) *synchronizer.Synchronizer {
	t.Helper()

	fc := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	cfg := config.Autosave{
		DebounceDelay:  3 * time.Second,
		ConfirmDelay:   2 * time.Second,
		SaveTimeout:    10 * time.Second,
		DiscardOnClose: true,
	}
	s := synchronizer.New(store, models.Record{Kind: kind, Fields: kind.Defaults()}, cfg, logger.Nop(), synchronizer.WithClock(fc))
	s.Initialize(nil)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
