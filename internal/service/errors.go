// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidDataProvided wraps every validation failure of an incoming
	// record.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnknownRecordKind is returned for unknown kinds in records and
	// list filters.
	ErrUnknownRecordKind = errors.New("unknown record kind")

	// ErrKindMismatch is returned when an update tries to change the kind
	// of a stored record.
	ErrKindMismatch = errors.New("record kind cannot be changed")
)
