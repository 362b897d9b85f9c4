// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the draft-keeper server and
// client: typed context keys, HMAC request signing, JSON response writing,
// the resty HTTP client and identifier generators.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RecordIDCtxKey is the key under which the records router stores the id
// taken from the request path.
var RecordIDCtxKey = contextKey("recordID")

// WithRecordID returns a copy of ctx carrying the record id.
func WithRecordID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RecordIDCtxKey, id)
}

// GetRecordIDFromContext retrieves the record id stored by WithRecordID.
// ok is false when the value is missing, empty or of an unexpected type.
func GetRecordIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RecordIDCtxKey).(string)
	return id, ok && id != ""
}
