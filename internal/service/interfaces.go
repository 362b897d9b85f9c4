// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService is the server-side record API.
type RecordService interface {
	// Get returns one record.
	Get(ctx context.Context, id string) (models.Record, error)

	// Create stores a new record. The server assigns the id, version 1, a
	// fresh revision, timestamps and the derived completion field.
	Create(ctx context.Context, r models.Record) (models.Record, error)

	// Update stores r on top of version r.Version and returns the stored
	// record with the next version. A stale version yields
	// store.ErrVersionConflict.
	Update(ctx context.Context, r models.Record) (models.Record, error)

	// List returns the summaries of the records of one kind, newest first.
	List(ctx context.Context, kind models.RecordKind) (models.RecordList, error)
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// EditorService opens records for editing on the client.
type EditorService interface {
	// Open returns an initialized synchronizer for the record. An empty id,
	// or an id the server does not know, opens a new record filled with the
	// defaults of kind.
	Open(ctx context.Context, kind models.RecordKind, id string) (*synchronizer.Synchronizer, error)

	// List returns the summaries of the stored records of kind.
	List(ctx context.Context, kind models.RecordKind) ([]models.RecordSummary, error)

	// ServerVersion returns the version reported by the records server.
	ServerVersion(ctx context.Context) (string, error)
}

// RefreshJob periodically reconciles the open record with the server copy.
type RefreshJob interface {
	// Watch selects the synchronizer to refresh. nil stops refreshing
	// without stopping the job.
	Watch(s *synchronizer.Synchronizer)

	Start(ctx context.Context)
	Stop()
}
