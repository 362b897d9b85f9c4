// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// prepareFields returns the stored form of a record body: strings and keys
// in Unicode NFC and the completion field recomputed.
func prepareFields(kind models.RecordKind, f models.Fields) models.Fields {
	out := normalizeMap(f)
	delete(out, models.CompletionField)
	out[models.CompletionField] = completion(kind, out)
	return out
}

func normalizeMap(m map[string]any) models.Fields {
	out := make(models.Fields, len(m))
	for k, v := range m {
		out[norm.NFC.String(k)] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch v := v.(type) {
	case string:
		return norm.NFC.String(v)
	case models.Fields:
		return normalizeMap(v)
	case map[string]any:
		return map[string]any(normalizeMap(v))
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = norm.NFC.String(s)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// completion is the percentage of the kind's required sections that hold
// at least one filled value.
func completion(kind models.RecordKind, f models.Fields) int {
	sections := kind.RequiredSections()
	if len(sections) == 0 {
		return 0
	}

	filled := 0
	for _, section := range sections {
		if v, ok := f.Get(section); ok && isFilled(v) {
			filled++
		}
	}
	return int(math.Round(float64(filled) * 100 / float64(len(sections))))
}

func isFilled(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case models.Fields:
		return anyFilled(v)
	case map[string]any:
		return anyFilled(v)
	case []any:
		for _, item := range v {
			if isFilled(item) {
				return true
			}
		}
		return false
	case []string:
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func anyFilled(m map[string]any) bool {
	for _, v := range m {
		if isFilled(v) {
			return true
		}
	}
	return false
}
