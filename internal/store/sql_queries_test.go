// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/models"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func Test_buildGetRecordQuery(t *testing.T) {
	query, args, err := buildGetRecordQuery(pgBuilder, "abc")
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, kind, version, revision, fields, created_at, updated_at FROM records WHERE id = $1", query)
	assert.Equal(t, []any{"abc"}, args)
}

func Test_buildListRecordsQuery(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.RecordKind
		wantWhere bool
		wantArgs  []any
	}{
		{name: "all kinds", kind: "", wantWhere: false, wantArgs: nil},
		{name: "one kind", kind: models.CoverLetter, wantWhere: true, wantArgs: []any{"cover_letter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListRecordsQuery(pgBuilder, tt.kind)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWhere, strings.Contains(query, "WHERE kind = $1"))
			assert.True(t, strings.HasSuffix(query, "ORDER BY updated_at DESC, id"))
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateRecordQuery_ChecksVersion(t *testing.T) {
	r := testRecord()
	r.Version = 4

	query, args, err := buildUpdateRecordQuery(pgBuilder, r, "{}", 3)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE records SET version = $1, revision = $2, fields = $3, updated_at = $4")
	assert.Contains(t, query, "WHERE id = $5 AND version = $6")
	require.Len(t, args, 6)
	assert.Equal(t, int64(4), args[0])
	assert.Equal(t, r.ID, args[4])
	assert.Equal(t, int64(3), args[5])
}

func Test_buildInsertRecordQuery_DefaultsTimestamps(t *testing.T) {
	r := testRecord()
	r.CreatedAt, r.UpdatedAt = nil, nil

	query, args, err := buildInsertRecordQuery(pgBuilder, r, "{}")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO records (id,kind,version,revision,fields,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)"))
	require.Len(t, args, 7)
	assert.NotZero(t, args[5])
	assert.NotZero(t, args[6])
}
