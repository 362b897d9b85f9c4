// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	requestTimeout = 30 * time.Second
	closeTimeout   = 30 * time.Second
)

var errNothingToCopy = errors.New("the record is not stored yet")

// appModel routes between the record list and the open editor.
type appModel struct {
	ctx       context.Context
	editors   service.EditorService
	refresh   service.RefreshJob
	buildInfo models.AppBuildInfo

	list          listModel
	editor        editorModel
	editing       bool
	serverVersion string
	showBuildInfo bool
	quitting      bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		editors:   services.EditorService,
		refresh:   services.RefreshJob,
		buildInfo: buildInfo,
		list:      newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadList(m.list.kind()), m.loadServerVersion())
}

func (m appModel) loadList(kind models.RecordKind) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		items, err := m.editors.List(ctx, kind)
		return listLoadedMsg{kind: kind, items: items, err: err}
	}
}

func (m appModel) loadServerVersion() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		v, err := m.editors.ServerVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}

func (m appModel) openEditor(kind models.RecordKind, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		s, err := m.editors.Open(ctx, kind, id)
		return editorOpenedMsg{sync: s, err: err}
	}
}

func (m appModel) flushEditor() tea.Cmd {
	s := m.editor.sync
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, requestTimeout)
		defer cancel()
		_, err := s.Flush(ctx)
		return flushDoneMsg{err: err}
	}
}

func (m appModel) closeEditor() tea.Cmd {
	s, feed := m.editor.sync, m.editor.feed
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(m.ctx), closeTimeout)
		defer cancel()
		err := s.Close(ctx)
		feed.stop()
		return editorClosedMsg{err: err}
	}
}

func copyID(id string) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			return copiedMsg{err: errNothingToCopy}
		}
		return copiedMsg{err: clipboard.WriteAll(id)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.kind != m.list.kind() {
			return m, nil
		}
		if msg.err != nil {
			m.list.loading = false
			m.list.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.errMsg = ""
		m.list.setItems(msg.items)
		return m, nil

	case serverVersionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case editorOpenedMsg:
		if msg.err != nil {
			m.list.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.errMsg = ""
		m.editor = newEditorModel(msg.sync)
		m.editing = true
		m.refresh.Watch(msg.sync)
		return m, m.editor.Init()

	case stateMsg:
		if !m.editing || msg.feed != m.editor.feed {
			return m, nil
		}
		m.editor.applyState(msg.state)
		return m, m.editor.feed.wait()

	case flushDoneMsg:
		if m.editing {
			if msg.err != nil {
				m.editor.notice = humanizeError(msg.err)
			} else {
				m.editor.notice = ""
			}
		}
		return m, nil

	case copiedMsg:
		if m.editing {
			if msg.err != nil {
				m.editor.notice = "Copy failed: " + msg.err.Error()
			} else {
				m.editor.notice = "Record id copied"
			}
		}
		return m, nil

	case editorClosedMsg:
		m.refresh.Watch(nil)
		m.editing = false
		m.editor = editorModel{}
		if m.quitting {
			return m, tea.Quit
		}
		m.list.status = ""
		if msg.err != nil {
			m.list.status = "Closed with unsaved changes: " + humanizeError(msg.err)
		}
		m.list.loading = true
		return m, m.loadList(m.list.kind())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.buildInfo, keys.enter) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateList(msg)
	}

	if m.editing {
		cmd := m.editor.updateInput(msg)
		return m, cmd
	}
	return m, nil
}

// quit closes an open editor before leaving so that its draft is flushed.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	if !m.editing {
		return m, tea.Quit
	}
	if m.quitting {
		return m, nil
	}
	m.quitting = true
	m.editor.closing = true
	return m, m.closeEditor()
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.nextKind):
		m.list.nextKind()
		return m, m.loadList(m.list.kind())
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.list.current(); ok {
			return m, m.openEditor(item.Kind, item.ID)
		}
	case key.Matches(msg, keys.newRecord):
		kinds := models.RecordKinds()
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(kinds) {
			return m, m.openEditor(kinds[i], "")
		}
	case key.Matches(msg, keys.reload):
		m.list.loading = true
		return m, tea.Batch(m.loadList(m.list.kind()), m.loadServerVersion())
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m appModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor.closing {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		if m.editor.state.SyncState == synchronizer.Error && !m.editor.confirmClose {
			m.editor.confirmClose = true
			m.editor.notice = "The last save failed. ctrl+s retries, esc again closes anyway"
			return m, nil
		}
		m.editor.closing = true
		return m, m.closeEditor()
	case key.Matches(msg, keys.save):
		m.editor.notice = ""
		return m, m.flushEditor()
	case key.Matches(msg, keys.copyID):
		return m, copyID(m.editor.state.Draft.ID)
	case key.Matches(msg, keys.tab):
		m.editor.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.editor.moveFocus(-1)
		return m, nil
	}

	cmd := m.editor.updateInput(msg)
	return m, cmd
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}
	if m.editing {
		return m.editor.View()
	}
	return m.list.View(m.serverVersion)
}
