// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// Fingerprint returns a deterministic digest of fields. Two field trees that
// serialize to the same canonical JSON share a fingerprint: object keys are
// sorted, strings and keys are NFC-normalized, a nil tree equals an empty one.
//
// Values that cannot be represented as JSON yield an error; callers treat
// such drafts as changed.
func Fingerprint(fields models.Fields) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(canonicalValue(map[string]any(fields))); err != nil {
		return "", fmt.Errorf("fingerprint fields: %w", err)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:]), nil
}

// canonicalValue rewrites v into a form whose JSON encoding is stable.
// encoding/json already sorts map keys; this adds Unicode normalization and
// folds the container variants Fields may hold.
func canonicalValue(v any) any {
	switch val := v.(type) {
	case models.Fields:
		return canonicalValue(map[string]any(val))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[norm.NFC.String(k)] = canonicalValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = canonicalValue(elem)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = norm.NFC.String(elem)
		}
		return out
	case string:
		return norm.NFC.String(val)
	default:
		return v
	}
}
