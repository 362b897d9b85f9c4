// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
)

func statusText(st synchronizer.State) string {
	switch st.SyncState {
	case synchronizer.Saving:
		return "Saving…"
	case synchronizer.Saved:
		return "Saved"
	case synchronizer.Dirty:
		return "Unsaved changes"
	case synchronizer.Error:
		return "Save failed: " + humanizeError(st.LastError)
	}

	if st.LastSavedAt != nil {
		return "All changes saved at " + st.LastSavedAt.Format("15:04:05")
	}
	return "No changes"
}

func renderStatus(st synchronizer.State) string {
	style, ok := statusStyles[st.SyncState.String()]
	if !ok {
		return statusText(st)
	}
	return style.Render(statusText(st))
}
