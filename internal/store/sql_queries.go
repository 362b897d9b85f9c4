// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-draft-keeper/models"
)

const recordsTable = "records"

var recordColumns = []string{
	"id",
	"kind",
	"version",
	"revision",
	"fields",
	"created_at",
	"updated_at",
}

func buildGetRecordQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListRecordsQuery selects records newest first. An empty kind selects
// every kind.
func buildListRecordsQuery(b sq.StatementBuilderType, kind models.RecordKind) (string, []any, error) {
	q := b.Select(recordColumns...).
		From(recordsTable).
		OrderBy("updated_at DESC", "id")
	if kind != "" {
		q = q.Where(sq.Eq{"kind": string(kind)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertRecordQuery(b sq.StatementBuilderType, r models.Record, fields string) (string, []any, error) {
	query, args, err := b.Insert(recordsTable).
		Columns(recordColumns...).
		Values(r.ID, string(r.Kind), r.Version, r.Revision, fields, timeOrNow(r.CreatedAt), timeOrNow(r.UpdatedAt)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateRecordQuery updates a record only while its stored version still
// equals expectedVersion.
func buildUpdateRecordQuery(b sq.StatementBuilderType, r models.Record, fields string, expectedVersion int64) (string, []any, error) {
	query, args, err := b.Update(recordsTable).
		Set("version", r.Version).
		Set("revision", r.Revision).
		Set("fields", fields).
		Set("updated_at", timeOrNow(r.UpdatedAt)).
		Where(sq.Eq{"id": r.ID, "version": expectedVersion}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRecordExistsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select("COUNT(1)").
		From(recordsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func timeOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	return t.UTC()
}
