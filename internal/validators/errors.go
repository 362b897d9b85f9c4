// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRecordID    = errors.New("invalid record ID")
	ErrInvalidKind        = errors.New("invalid record kind")
	ErrInvalidVersion     = errors.New("invalid Version")
	ErrInvalidFieldKey    = errors.New("invalid field key")
	ErrFieldsTooDeep      = errors.New("fields are nested too deeply")
	ErrUnsupportedValue   = errors.New("unsupported field value")
	ErrRecordIDForbidden  = errors.New("record ID must be empty on create")
	ErrCreateVersionIsSet = errors.New("version must be zero on create")
)
