// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_repository_mock.go -package=mock

// RecordRepository persists form records.
type RecordRepository interface {
	// Get returns the record with the given id or [ErrRecordNotFound].
	Get(ctx context.Context, id string) (models.Record, error)

	// Create inserts r as is. The caller assigns the id, version and
	// revision. Returns [ErrRecordAlreadyExists] when the id is taken.
	Create(ctx context.Context, r models.Record) (models.Record, error)

	// Update replaces the stored record if its version equals
	// expectedVersion. Returns [ErrRecordNotFound] or [ErrVersionConflict]
	// otherwise.
	Update(ctx context.Context, r models.Record, expectedVersion int64) (models.Record, error)

	// List returns the records of one kind, newest first. An empty kind
	// lists every record.
	List(ctx context.Context, kind models.RecordKind) ([]models.Record, error)
}
