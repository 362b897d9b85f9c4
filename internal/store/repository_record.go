// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// recordRepository is the SQL implementation of [RecordRepository]. It works
// against both PostgreSQL and SQLite through the placeholder format and error
// classifier carried by [DB].
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		r                    models.Record
		kind, fields         string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&r.ID, &kind, &r.Version, &r.Revision, &fields, &createdAt, &updatedAt); err != nil {
		return models.Record{}, err
	}

	r.Kind = models.RecordKind(kind)
	if err := json.Unmarshal([]byte(fields), &r.Fields); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	if r.Fields == nil {
		r.Fields = models.Fields{}
	}
	r.CreatedAt = &createdAt
	r.UpdatedAt = &updatedAt

	return r, nil
}

func encodeFields(f models.Fields) (string, error) {
	if f == nil {
		f = models.Fields{}
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}
	return string(b), nil
}

// Get retrieves a single record by id.
func (p *recordRepository) Get(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(p.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Get").Str("record_id", id).Msg("failed to create query")
		return models.Record{}, err
	}

	r, err := scanRecord(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Get").Str("record_id", id).Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return r, nil
}

// Create inserts a new record.
func (p *recordRepository) Create(ctx context.Context, r models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	fields, err := encodeFields(r.Fields)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Create").Str("record_id", r.ID).Msg("failed to encode fields")
		return models.Record{}, err
	}

	query, args, err := buildInsertRecordQuery(p.builder(), r, fields)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Create").Str("record_id", r.ID).Msg("failed to create query")
		return models.Record{}, err
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		class := p.classify(err)
		log.Err(err).
			Str("func", "recordRepository.Create").
			Str("record_id", r.ID).
			Stringer("classification", class).
			Msg("failed to insert record")
		if class == Duplicate {
			return models.Record{}, ErrRecordAlreadyExists
		}
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r, nil
}

// Update stores r if the stored version still equals expectedVersion. When no
// row is updated the record is looked up again inside the same transaction
// to tell a missing record from a stale version.
func (p *recordRepository) Update(ctx context.Context, r models.Record, expectedVersion int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	fields, err := encodeFields(r.Fields)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Update").Str("record_id", r.ID).Msg("failed to encode fields")
		return models.Record{}, err
	}

	query, args, err := buildUpdateRecordQuery(p.builder(), r, fields, expectedVersion)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Update").Str("record_id", r.ID).Msg("failed to create query")
		return models.Record{}, err
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Update").Msg("failed to begin transaction")
		return models.Record{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Update").
			Str("record_id", r.ID).
			Stringer("classification", p.classify(err)).
			Msg("failed to update record")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		existsQuery, existsArgs, err := buildRecordExistsQuery(p.builder(), r.ID)
		if err != nil {
			return models.Record{}, err
		}

		var count int
		if err = tx.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&count); err != nil {
			log.Err(err).Str("func", "recordRepository.Update").Str("record_id", r.ID).Msg("failed to check record existence")
			return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count == 0 {
			return models.Record{}, ErrRecordNotFound
		}

		log.Info().
			Str("func", "recordRepository.Update").
			Str("record_id", r.ID).
			Int64("expected_version", expectedVersion).
			Msg("version conflict")
		return models.Record{}, ErrVersionConflict
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "recordRepository.Update").Msg("failed to commit transaction")
		return models.Record{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return r, nil
}

// List returns records of the given kind, newest first.
func (p *recordRepository) List(ctx context.Context, kind models.RecordKind) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(p.builder(), kind)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.List").Str("kind", string(kind)).Msg("failed to execute query for listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)
	for rows.Next() {
		r, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "recordRepository.List").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, r)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "recordRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
