// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/models"
)

func mustFingerprint(t *testing.T, f models.Fields) string {
	t.Helper()
	fp, err := Fingerprint(f)
	require.NoError(t, err)
	return fp
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name  string
		a, b  models.Fields
		equal bool
	}{
		{
			name:  "nil equals empty",
			a:     nil,
			b:     models.Fields{},
			equal: true,
		},
		{
			name:  "key order is irrelevant",
			a:     models.Fields{"title": "x", "summary": "y"},
			b:     models.Fields{"summary": "y", "title": "x"},
			equal: true,
		},
		{
			name:  "composed and decomposed accents",
			a:     models.Fields{"title": "Caf\u00e9"},
			b:     models.Fields{"title": "Cafe\u0301"},
			equal: true,
		},
		{
			name:  "integer and float of same value",
			a:     models.Fields{"financials": map[string]any{"monthly_costs": 1500}},
			b:     models.Fields{"financials": map[string]any{"monthly_costs": 1500.0}},
			equal: true,
		},
		{
			name:  "fields and plain map nesting",
			a:     models.Fields{"market": models.Fields{"competitors": "none"}},
			b:     models.Fields{"market": map[string]any{"competitors": "none"}},
			equal: true,
		},
		{
			name:  "string slices",
			a:     models.Fields{"skills": []string{"go"}},
			b:     models.Fields{"skills": []any{"go"}},
			equal: true,
		},
		{
			name: "different values",
			a:    models.Fields{"title": "x"},
			b:    models.Fields{"title": "y"},
		},
		{
			name: "empty string differs from missing",
			a:    models.Fields{"title": ""},
			b:    models.Fields{},
		},
		{
			name: "array order matters",
			a:    models.Fields{"skills": []any{"go", "sql"}},
			b:    models.Fields{"skills": []any{"sql", "go"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa, fb := mustFingerprint(t, tt.a), mustFingerprint(t, tt.b)
			if tt.equal {
				assert.Equal(t, fa, fb)
			} else {
				assert.NotEqual(t, fa, fb)
			}
		})
	}
}

func TestFingerprint_Unserializable(t *testing.T) {
	_, err := Fingerprint(models.Fields{"callback": func() {}})
	assert.Error(t, err)
}

func TestMergeFields(t *testing.T) {
	remote := models.Fields{
		"title":   "Remote",
		"summary": "Remote summary",
		"market":  map[string]any{"target_audience": "students", "competitors": "two"},
	}
	local := models.Fields{
		"title":  "Local",
		"market": map[string]any{"target_audience": "families"},
	}

	got := mergeFields(remote, local, []string{"market.competitors", "market.target_audience", "title"})

	want := models.Fields{
		"title":   "Local",
		"summary": "Remote summary",
		"market":  map[string]any{"target_audience": "families"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mergeFields mismatch (-want +got):\n%s", diff)
	}

	// inputs are not modified
	v, _ := remote.Get("market.competitors")
	assert.Equal(t, "two", v)
}

func TestDirtySet_Settle(t *testing.T) {
	d := dirtySet{}
	d.mark("title", 1)
	d.mark("summary", 2)
	d.mark("title", 3)

	d.settle(2)
	assert.Equal(t, []string{"title"}, d.paths())

	d.settle(3)
	assert.Empty(t, d.paths())
}
