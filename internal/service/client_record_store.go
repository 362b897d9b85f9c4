// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// recordStore serves the synchronizer from the records API.
type recordStore struct {
	adapter adapter.RecordAdapter
}

// NewRecordStore returns a [synchronizer.RemoteRecordStore] backed by the
// records API.
func NewRecordStore(recordAdapter adapter.RecordAdapter) synchronizer.RemoteRecordStore {
	return &recordStore{adapter: recordAdapter}
}

func (s *recordStore) FetchOne(ctx context.Context, id string) (models.Record, error) {
	r, err := s.adapter.Fetch(ctx, id)
	if err != nil {
		return models.Record{}, mapAdapterError(err)
	}
	return r, nil
}

func (s *recordStore) SaveOne(ctx context.Context, r models.Record) (models.Record, error) {
	saved, err := s.adapter.Save(ctx, r)
	if err != nil {
		return models.Record{}, mapAdapterError(err)
	}
	return saved, nil
}
