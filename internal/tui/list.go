// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

type listModel struct {
	kinds   []models.RecordKind
	kindIdx int

	items   []models.RecordSummary
	idx     int
	loading bool
	status  string
	errMsg  string
}

func newListModel() listModel {
	return listModel{
		kinds:   append([]models.RecordKind{""}, models.RecordKinds()...),
		loading: true,
	}
}

// kind is the active filter. Empty means every kind.
func (m listModel) kind() models.RecordKind {
	return m.kinds[m.kindIdx]
}

func (m listModel) current() (models.RecordSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.RecordSummary{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items []models.RecordSummary) {
	m.loading = false
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) nextKind() {
	m.kindIdx = (m.kindIdx + 1) % len(m.kinds)
	m.idx = 0
	m.items = nil
	m.loading = true
}

func (m listModel) View(serverVersion string) string {
	var b strings.Builder

	tabs := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		label := kindLabel(string(k))
		if i == m.kindIdx {
			label = focusedStyle.Render("[" + label + "]")
		}
		tabs[i] = label
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No records\n")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			title := item.Title
			if strings.TrimSpace(title) == "" {
				title = "(untitled)"
			}
			updated := ""
			if item.UpdatedAt != nil {
				updated = item.UpdatedAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(&b, "%s%-14s %-36s v%-4d %s\n",
				cursor, kindLabel(string(item.Kind)), fitText(title, 36), item.Version, updated)
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	title := "DRAFTKEEPER"
	if serverVersion != "" {
		title += "  (server " + serverVersion + ")"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ enter: open │ tab: kind │ 1/2/3: new plan/CV/letter │ r: reload │ v: about │ q: quit")
}
