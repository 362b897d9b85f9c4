// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"time"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// SyncState is the persistence status of the local draft.
type SyncState string

const (
	// Clean: the draft matches the last saved content and no save is pending.
	Clean SyncState = "clean"
	// Dirty: the draft has unsaved edits and a save is scheduled.
	Dirty SyncState = "dirty"
	// Saving: a save request is in flight.
	Saving SyncState = "saving"
	// Saved: a save just succeeded. Reverts to Clean after the confirm delay.
	Saved SyncState = "saved"
	// Error: the last save failed. The draft is kept intact.
	Error SyncState = "error"
)

func (s SyncState) String() string {
	return string(s)
}

// State is an immutable snapshot of a Synchronizer published to subscribers.
type State struct {
	// Seq increases with every published change. Notifications may reach a
	// subscriber out of order; snapshots with a lower Seq are stale.
	Seq uint64

	// Draft is a deep copy of the local record.
	Draft models.Record

	SyncState SyncState

	// LastSavedAt is the local time of the last successful save.
	LastSavedAt *time.Time

	// LastError is the error of the most recent failed save. Cleared by the
	// next successful or suppressed save.
	LastError error

	// DirtyPaths lists the field paths edited since the last save, sorted.
	DirtyPaths []string

	// SavePending reports whether a debounce timer is armed.
	SavePending bool
}

// IsDirty reports whether path has unsaved edits.
func (s State) IsDirty(path string) bool {
	for _, p := range s.DirtyPaths {
		if p == path {
			return true
		}
	}
	return false
}
