// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type listLoadedMsg struct {
	kind  models.RecordKind
	items []models.RecordSummary
	err   error
}

type serverVersionMsg struct {
	version string
	err     error
}

type editorOpenedMsg struct {
	sync *synchronizer.Synchronizer
	err  error
}

// stateMsg carries a published synchronizer state to the editor that
// subscribed to it.
type stateMsg struct {
	feed  *stateFeed
	state synchronizer.State
}

type flushDoneMsg struct {
	err error
}

type editorClosedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
