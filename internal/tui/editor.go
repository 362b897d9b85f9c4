// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const inputWidth = 48

// editorModel is the form of one open record. Every change of an input is
// forwarded to the synchronizer, which owns the draft.
type editorModel struct {
	sync *synchronizer.Synchronizer
	feed *stateFeed

	paths  []string
	inputs []textinput.Model
	focus  int

	state  synchronizer.State
	notice string

	// confirmClose is set after esc was pressed on a draft whose last save
	// failed. A second esc closes anyway.
	confirmClose bool
	closing      bool
}

func newEditorModel(s *synchronizer.Synchronizer) editorModel {
	st := s.State()
	paths := st.Draft.Kind.FormPaths()

	inputs := make([]textinput.Model, len(paths))
	for i, p := range paths {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = inputWidth
		ti.Placeholder = fieldLabel(p)
		ti.SetValue(fieldText(st.Draft.Fields, p))
		inputs[i] = ti
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return editorModel{
		sync:   s,
		feed:   newStateFeed(s),
		paths:  paths,
		inputs: inputs,
		state:  st,
	}
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.feed.wait())
}

// fieldText renders a field value for a text input.
func fieldText(f models.Fields, path string) string {
	v, ok := f.Get(path)
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(t)
	}
}

// applyState renders a published state. Older states are ignored and the
// focused input keeps its text while it has unsaved edits.
func (m *editorModel) applyState(st synchronizer.State) {
	if st.Seq < m.state.Seq {
		return
	}
	m.state = st
	if st.SyncState != synchronizer.Error {
		m.confirmClose = false
	}

	for i, p := range m.paths {
		if i == m.focus && st.IsDirty(p) {
			continue
		}
		if v := fieldText(st.Draft.Fields, p); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *editorModel) moveFocus(delta int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// updateInput passes msg to the focused input and records the edit when its
// text changed.
func (m *editorModel) updateInput(msg tea.Msg) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		if err := m.sync.UpdateField(m.paths[m.focus], after); err != nil {
			m.notice = humanizeError(err)
		} else {
			m.notice = ""
		}
	}
	return cmd
}

func (m editorModel) title() string {
	t := strings.TrimSpace(m.state.Draft.Title())
	if t == "" {
		t = "(untitled)"
	}
	return strings.ToUpper(kindLabel(string(m.state.Draft.Kind))) + ": " + fitText(t, 40)
}

func (m editorModel) View() string {
	var b strings.Builder

	for i, p := range m.paths {
		label := fieldLabel(p)
		marker := " "
		if m.state.IsDirty(p) {
			marker = dirtyStyle.Render("*")
		}
		if i == m.focus {
			label = focusedStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s %s\n  %s\n", marker, label, m.inputs[i].View())
	}

	b.WriteString("\n")
	b.WriteString(renderStatus(m.state))
	if m.state.Draft.ID != "" {
		fmt.Fprintf(&b, "  │ v%d │ %s", m.state.Draft.Version, m.state.Draft.ID)
	} else {
		b.WriteString("  │ not stored yet")
	}
	b.WriteString("\n")

	if m.closing {
		b.WriteString("\nClosing...\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + errorStyle.Render(m.notice) + "\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"),
		"tab/↓: next field │ shift+tab/↑: previous │ ctrl+s: save now │ ctrl+y: copy id │ esc: close")
}
