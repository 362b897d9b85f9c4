// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{name: "single segment", path: "title", want: []string{"title"}},
		{name: "nested", path: "market.target_audience", want: []string{"market", "target_audience"}},
		{name: "empty", path: "", wantErr: true},
		{name: "leading dot", path: ".title", wantErr: true},
		{name: "trailing dot", path: "title.", wantErr: true},
		{name: "double dot", path: "a..b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFields_SetGet_Nested(t *testing.T) {
	f := Fields{}

	require.NoError(t, f.Set("financials.monthly_revenue", 1200.0))
	require.NoError(t, f.Set("title", "Bakery"))

	v, ok := f.Get("financials.monthly_revenue")
	require.True(t, ok)
	assert.Equal(t, 1200.0, v)

	v, ok = f.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Bakery", v)

	_, ok = f.Get("financials.missing")
	assert.False(t, ok)
	_, ok = f.Get("title.nested")
	assert.False(t, ok, "scalar values have no children")
}

func TestFields_Set_ReplacesScalarParent(t *testing.T) {
	f := Fields{"market": "local"}

	require.NoError(t, f.Set("market.target_audience", "students"))

	v, ok := f.Get("market.target_audience")
	require.True(t, ok)
	assert.Equal(t, "students", v)
}

func TestFields_Set_InvalidPath(t *testing.T) {
	f := Fields{}
	assert.ErrorIs(t, f.Set("a..b", 1), ErrInvalidPath)
	assert.Empty(t, f)
}

func TestFields_Set_StoresCopy(t *testing.T) {
	f := Fields{}
	skills := []any{"go", "sql"}

	require.NoError(t, f.Set("skills", skills))
	skills[0] = "mutated"

	v, _ := f.Get("skills")
	assert.Equal(t, []any{"go", "sql"}, v)
}

func TestFields_Delete(t *testing.T) {
	f := Fields{"personal": map[string]any{"email": "a@b.c", "phone": "1"}}

	assert.True(t, f.Delete("personal.email"))
	assert.False(t, f.Delete("personal.email"))
	assert.False(t, f.Delete("missing.path"))

	_, ok := f.Get("personal.phone")
	assert.True(t, ok)
}

func TestFields_Clone_IsDeep(t *testing.T) {
	orig := Fields{"personal": map[string]any{"full_name": "Ana"}, "skills": []any{"go"}}

	cp := orig.Clone()
	require.NoError(t, cp.Set("personal.full_name", "Bea"))
	cp["skills"].([]any)[0] = "rust"

	v, _ := orig.Get("personal.full_name")
	assert.Equal(t, "Ana", v)
	assert.Equal(t, []any{"go"}, orig["skills"])
}

func TestFields_Clone_Nil(t *testing.T) {
	var f Fields
	cp := f.Clone()
	require.NotNil(t, cp)
	assert.Empty(t, cp)
}

func TestFields_LeafPaths(t *testing.T) {
	f := Fields{
		"title": "x",
		"market": map[string]any{
			"target_audience": "y",
			"competitors":     "z",
		},
		"extra": map[string]any{},
	}

	assert.Equal(t, []string{
		"extra",
		"market.competitors",
		"market.target_audience",
		"title",
	}, f.LeafPaths())
}

func TestRecordKind_Defaults(t *testing.T) {
	for _, kind := range RecordKinds() {
		t.Run(string(kind), func(t *testing.T) {
			require.True(t, kind.Valid())

			defaults := kind.Defaults()
			for _, p := range kind.FormPaths() {
				v, ok := defaults.Get(p)
				require.True(t, ok, p)
				assert.Equal(t, "", v)
			}
		})
	}

	assert.False(t, RecordKind("job_offer").Valid())
}

func TestRecord_CloneAndTitle(t *testing.T) {
	rec := Record{ID: "1", Kind: CV, Fields: CV.Defaults()}
	require.NoError(t, rec.Fields.Set("personal.full_name", "Ana"))

	cp := rec.Clone()
	require.NoError(t, cp.Fields.Set("personal.full_name", "Bea"))

	assert.Equal(t, "Ana", rec.Title())
	assert.Equal(t, "Bea", cp.Title())
	assert.Equal(t, RecordSummary{ID: "1", Kind: CV, Title: "Ana"}, rec.Summary())
}
