// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the draft-keeper
// records server.
//
// The primary abstraction is [RecordAdapter], which decouples the service
// layer from the REST API. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrConflict] for 409,
// [ErrNotFound] for 404, [ErrTransport] when no response arrived).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-draft-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_adapter_mock.go -package=mock

// RecordAdapter talks to the records API.
type RecordAdapter interface {
	// Fetch retrieves one record. Returns [ErrNotFound] (wrapped) when the
	// server has no record with that id.
	Fetch(ctx context.Context, id string) (models.Record, error)

	// Save creates r with POST /api/records/ when r.ID is empty and updates
	// it with PUT /api/records/{id} otherwise. The request body is signed
	// when a hash key is configured. Returns the record as stored, or
	// [ErrConflict] (wrapped) when r.Version is stale.
	Save(ctx context.Context, r models.Record) (models.Record, error)

	// List returns the summaries of the records of one kind. An empty kind
	// lists everything.
	List(ctx context.Context, kind models.RecordKind) ([]models.RecordSummary, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
