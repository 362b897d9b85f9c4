// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type editorService struct {
	adapter adapter.RecordAdapter
	store   synchronizer.RemoteRecordStore
	cfg     config.Autosave

	opts []synchronizer.Option

	logger *logger.Logger
}

// NewEditorService opens records through recordAdapter. opts are passed to
// every synchronizer it creates.
func NewEditorService(recordAdapter adapter.RecordAdapter, cfg config.Autosave, logger *logger.Logger, opts ...synchronizer.Option) EditorService {
	return &editorService{
		adapter: recordAdapter,
		store:   NewRecordStore(recordAdapter),
		cfg:     cfg,
		opts:    opts,
		logger:  logger,
	}
}

// Open implements EditorService. With an id and an empty kind the kind of the
// stored record is used.
func (e *editorService) Open(ctx context.Context, kind models.RecordKind, id string) (*synchronizer.Synchronizer, error) {
	var remote *models.Record
	if id != "" {
		r, err := e.store.FetchOne(ctx, id)
		switch {
		case err == nil:
			if kind == "" {
				kind = r.Kind
			} else if r.Kind != kind {
				return nil, fmt.Errorf("open record %s as %s: %w", id, kind, ErrKindMismatch)
			}
			remote = &r
		case errors.Is(err, synchronizer.ErrNotFound):
			e.logger.Info().
				Str("func", "editorService.Open").
				Str("record_id", id).
				Msg("record not found on server, opening a new one")
		default:
			return nil, fmt.Errorf("open record %s: %w", id, err)
		}
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordKind, kind)
	}

	base := models.Record{Kind: kind, Fields: kind.Defaults()}
	s := synchronizer.New(e.store, base, e.cfg, e.logger, e.opts...)
	s.Initialize(remote)

	return s, nil
}

func (e *editorService) List(ctx context.Context, kind models.RecordKind) ([]models.RecordSummary, error) {
	list, err := e.adapter.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", mapAdapterError(err))
	}
	return list, nil
}

func (e *editorService) ServerVersion(ctx context.Context) (string, error) {
	v, err := e.adapter.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("server version: %w", mapAdapterError(err))
	}
	return v, nil
}
