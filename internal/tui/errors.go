// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
)

// humanizeError turns a save or load failure into a status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch synchronizer.KindOf(err) {
	case synchronizer.KindNetwork:
		return "Server unavailable, changes are kept locally"
	case synchronizer.KindConflict:
		return "Record was changed elsewhere, save rejected"
	case synchronizer.KindValidation:
		if errors.Is(err, adapter.ErrBadRequest) {
			return "Server rejected the record: " + adapter.ExtractMessage(err)
		}
		return "Server rejected the record"
	case synchronizer.KindNotFound:
		return "Record no longer exists on the server"
	case synchronizer.KindCanceled:
		return "Request timed out"
	}

	switch {
	case errors.Is(err, service.ErrUnknownRecordKind):
		return "Unknown record kind"
	case errors.Is(err, service.ErrKindMismatch):
		return "Record has a different kind"
	}

	return err.Error()
}
