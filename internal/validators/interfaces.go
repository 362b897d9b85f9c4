// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks records and list filters before they reach the
// record service.
//
// A validator receives the value and the names of the parts to check
// (FieldID, FieldKind, FieldVersion, FieldFields, FieldCreate). Failures wrap
// one of the Err* sentinels of this package so callers can map them to a
// status.
package validators

import "context"

// Validator checks value. When fields is non-empty only the named parts are
// checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
