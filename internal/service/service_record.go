// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/metrics"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type generator interface {
	Generate() string
}

type recordService struct {
	recordRepository store.RecordRepository

	ids       generator
	revisions generator
	now       func() time.Time

	logger *logger.Logger
}

// NewRecordService builds the record service on top of the repository. Ids
// are UUIDv7, revisions are ULIDs.
func NewRecordService(recordRepository store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		ids:              utils.NewUUIDGenerator(),
		revisions:        utils.NewRevisionGenerator(),
		now:              func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger:           logger,
	}
}

func (s *recordService) Get(ctx context.Context, id string) (models.Record, error) {
	return s.recordRepository.Get(ctx, id)
}

func (s *recordService) Create(ctx context.Context, r models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	createdAt, updatedAt := s.now(), s.now()
	record := models.Record{
		ID:        s.ids.Generate(),
		Kind:      r.Kind,
		Version:   1,
		Revision:  s.revisions.Generate(),
		Fields:    prepareFields(r.Kind, r.Fields),
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}

	saved, err := s.recordRepository.Create(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "recordService.Create").Str("record_kind", string(r.Kind)).Msg("failed to create record")
		return models.Record{}, fmt.Errorf("create record: %w", err)
	}

	metrics.RecordsSavedTotal.WithLabelValues(string(saved.Kind), "create").Inc()
	log.Info().
		Str("func", "recordService.Create").
		Str("record_id", saved.ID).
		Str("record_kind", string(saved.Kind)).
		Msg("record created")

	return saved, nil
}

func (s *recordService) Update(ctx context.Context, r models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	current, err := s.recordRepository.Get(ctx, r.ID)
	if err != nil {
		return models.Record{}, err
	}
	if r.Kind != "" && r.Kind != current.Kind {
		return models.Record{}, ErrKindMismatch
	}

	expected := r.Version
	if expected != current.Version {
		metrics.RecordVersionConflictsTotal.WithLabelValues(string(current.Kind)).Inc()
		log.Info().
			Str("func", "recordService.Update").
			Str("record_id", r.ID).
			Int64("expected_version", expected).
			Int64("stored_version", current.Version).
			Msg("stale update rejected")
		return models.Record{}, store.ErrVersionConflict
	}

	updatedAt := s.now()
	next := models.Record{
		ID:        current.ID,
		Kind:      current.Kind,
		Version:   expected + 1,
		Revision:  s.revisions.Generate(),
		Fields:    prepareFields(current.Kind, r.Fields),
		CreatedAt: current.CreatedAt,
		UpdatedAt: &updatedAt,
	}

	saved, err := s.recordRepository.Update(ctx, next, expected)
	if errors.Is(err, store.ErrVersionConflict) {
		metrics.RecordVersionConflictsTotal.WithLabelValues(string(current.Kind)).Inc()
		return models.Record{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "recordService.Update").Str("record_id", r.ID).Msg("failed to update record")
		return models.Record{}, fmt.Errorf("update record: %w", err)
	}

	metrics.RecordsSavedTotal.WithLabelValues(string(saved.Kind), "update").Inc()
	log.Debug().
		Str("func", "recordService.Update").
		Str("record_id", saved.ID).
		Int64("version", saved.Version).
		Int("leaf_fields", len(saved.Fields.LeafPaths())).
		Msg("record updated")

	return saved, nil
}

func (s *recordService) List(ctx context.Context, kind models.RecordKind) (models.RecordList, error) {
	records, err := s.recordRepository.List(ctx, kind)
	if err != nil {
		return models.RecordList{}, fmt.Errorf("list records: %w", err)
	}

	summaries := make([]models.RecordSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Summary())
	}

	return models.RecordList{Records: summaries, Length: len(summaries)}, nil
}
