// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
)

// stateFeed bridges synchronizer notifications into the bubbletea loop. It
// buffers only the newest state: subscribers must not block, and the editor
// only ever renders the latest snapshot.
type stateFeed struct {
	ch   chan synchronizer.State
	done chan struct{}

	once        sync.Once
	unsubscribe func()
}

func newStateFeed(s *synchronizer.Synchronizer) *stateFeed {
	f := &stateFeed{
		ch:   make(chan synchronizer.State, 1),
		done: make(chan struct{}),
	}
	f.unsubscribe = s.Subscribe(f.push)
	return f
}

// push never blocks. An unread state is replaced unless it is newer.
func (f *stateFeed) push(st synchronizer.State) {
	for {
		select {
		case f.ch <- st:
			return
		default:
		}

		select {
		case old := <-f.ch:
			if old.Seq > st.Seq {
				st = old
			}
		default:
		}
	}
}

// wait returns a command delivering the next state, or nothing once the
// feed is stopped.
func (f *stateFeed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case st := <-f.ch:
			return stateMsg{feed: f, state: st}
		case <-f.done:
			return nil
		}
	}
}

func (f *stateFeed) stop() {
	f.once.Do(func() {
		f.unsubscribe()
		close(f.done)
	})
}
