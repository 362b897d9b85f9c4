// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// Errors a RemoteRecordStore is expected to return (wrapped or as is) so the
// synchronizer and its subscribers can tell failures apart.
var (
	ErrNetwork    = errors.New("record store unreachable")
	ErrConflict   = errors.New("record store rejected a stale version")
	ErrValidation = errors.New("record store rejected the record as invalid")
	ErrNotFound   = errors.New("record not found")
)

var (
	ErrClosed      = errors.New("synchronizer is closed")
	ErrInvalidPath = models.ErrInvalidPath
)

// ErrorKind is a coarse classification of save failures used for metrics
// labels and user-facing status lines.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindNetwork    ErrorKind = "network"
	KindConflict   ErrorKind = "conflict"
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindCanceled   ErrorKind = "canceled"
	KindUnknown    ErrorKind = "unknown"
)

// KindOf classifies err. A nil error has KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}
