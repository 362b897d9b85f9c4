// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"sort"
	"strings"
)

// PathSeparator separates the segments of a dot-addressable field path,
// e.g. "financials.monthly_revenue".
const PathSeparator = "."

// ErrInvalidPath is returned when a field path is empty or contains an empty
// segment ("a..b", ".a", "a.").
var ErrInvalidPath = errors.New("invalid field path")

// Fields is the schema-free body of a [Record]. Nested objects are stored as
// map[string]any, leaves are JSON-compatible values (string, float64, bool,
// nil, []any). The schema is owned by the caller; Fields only knows about
// paths.
type Fields map[string]any

// SplitPath validates path and returns its segments.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(path, PathSeparator)
	for _, p := range parts {
		if p == "" {
			return nil, ErrInvalidPath
		}
	}

	return parts, nil
}

// Get returns the value stored at path and whether it exists.
func (f Fields) Get(path string) (any, bool) {
	parts, err := SplitPath(path)
	if err != nil {
		return nil, false
	}

	var cur map[string]any = f
	for i, p := range parts {
		v, ok := cur[p]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		cur, ok = asMap(v)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}

// Set stores a deep copy of value at path, creating intermediate objects as
// needed. A non-object value found on the way is replaced by an object.
// f must be non-nil.
func (f Fields) Set(path string, value any) error {
	parts, err := SplitPath(path)
	if err != nil {
		return err
	}

	var cur map[string]any = f
	for _, p := range parts[:len(parts)-1] {
		next, ok := asMap(cur[p])
		if !ok {
			next = make(map[string]any)
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = CloneValue(value)

	return nil
}

// Delete removes the value at path and reports whether something was removed.
// Parent objects are left in place even when they become empty.
func (f Fields) Delete(path string) bool {
	parts, err := SplitPath(path)
	if err != nil {
		return false
	}

	var cur map[string]any = f
	for _, p := range parts[:len(parts)-1] {
		next, ok := asMap(cur[p])
		if !ok {
			return false
		}
		cur = next
	}

	last := parts[len(parts)-1]
	if _, ok := cur[last]; !ok {
		return false
	}
	delete(cur, last)

	return true
}

// Clone returns a deep copy of f. A nil receiver yields an empty, non-nil
// Fields value.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = CloneValue(v)
	}
	return out
}

// LeafPaths returns the sorted dot paths of every non-object value in f.
// Empty objects are reported as leaves so that they survive a path-wise copy.
func (f Fields) LeafPaths() []string {
	paths := make([]string, 0, len(f))
	collectLeafPaths(f, "", &paths)
	sort.Strings(paths)
	return paths
}

func collectLeafPaths(m map[string]any, prefix string, out *[]string) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + PathSeparator + k
		}

		nested, ok := asMap(v)
		if !ok || len(nested) == 0 {
			*out = append(*out, path)
			continue
		}
		collectLeafPaths(nested, path, out)
	}
}

// CloneValue deep-copies JSON-like values. Types other than objects and
// arrays are treated as immutable and returned as is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case Fields:
		return map[string]any(val.Clone())
	case map[string]any:
		return map[string]any(Fields(val).Clone())
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = CloneValue(elem)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = elem
		}
		return out
	default:
		return v
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Fields:
		return m, true
	default:
		return nil, false
	}
}
