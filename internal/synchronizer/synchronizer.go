// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package synchronizer keeps a locally edited record in sync with a remote
// record store.
//
// Edits are applied to the local draft immediately and persisted in the
// background: every edit restarts a debounce timer, and only when the timer
// fires is the current draft sent with one SaveOne call. Saves whose content
// matches the last persisted fingerprint are skipped. At most one save is in
// flight at a time; edits made meanwhile are kept and saved afterwards. A
// failed save leaves the draft untouched and moves the synchronizer to the
// Error state until the next save attempt.
//
// The typical lifecycle is:
//
//	s := synchronizer.New(store, models.Record{Kind: models.CV}, cfg.Autosave, log)
//	s.Initialize(fetched)          // nil for a brand new record
//	unsubscribe := s.Subscribe(render)
//	_ = s.UpdateField("personal.full_name", "Ana")
//	...
//	_, err := s.Flush(ctx)         // explicit save
//	_ = s.Close(ctx)
//
// All methods are safe for concurrent use.
package synchronizer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/clock"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/metrics"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	DefaultDebounceDelay = 3 * time.Second
	DefaultConfirmDelay  = 2 * time.Second
	DefaultSaveTimeout   = 30 * time.Second
)

// RemoteRecordStore persists records on behalf of the synchronizer.
//
// FetchOne returns the stored record or an error matching ErrNotFound.
// SaveOne creates the record when r.ID is empty and updates it otherwise.
// It returns the record as stored by the server, which becomes the new
// baseline for change detection.
type RemoteRecordStore interface {
	FetchOne(ctx context.Context, id string) (models.Record, error)
	SaveOne(ctx context.Context, r models.Record) (models.Record, error)
}

// Option customizes a Synchronizer.
type Option func(*Synchronizer)

// WithClock replaces the wall clock. Used by tests to drive timers.
func WithClock(c clock.Clock) Option {
	return func(s *Synchronizer) {
		s.clock = c
	}
}

type subscription struct {
	id int
	fn func(State)
}

// Synchronizer owns one editable record.
type Synchronizer struct {
	store  RemoteRecordStore
	clock  clock.Clock
	cfg    config.Autosave
	logger *logger.Logger

	mu sync.Mutex

	draft            models.Record
	initialized      bool
	savedFingerprint string
	syncState        SyncState
	lastSavedAt      *time.Time
	lastErr          error
	seq              uint64

	dirty   dirtySet
	editSeq uint64

	// debounce holds the armed save timer, confirm the saved->clean timer.
	// The generation counters invalidate callbacks that were already running
	// when their timer got replaced.
	debounce    clock.Timer
	debounceGen uint64
	confirm     clock.Timer
	confirmGen  uint64

	// inflight is non-nil while a SaveOne call is running and is closed when
	// it returns.
	inflight chan struct{}
	trailing bool
	// closing is set while Close flushes; edits are refused from then on.
	closing bool
	closed  bool

	subs      []subscription
	nextSubID int
}

// New creates a synchronizer for base. base supplies the record kind and the
// default field values shown before Initialize runs; its fields are also the
// baseline a fresh record is compared against, so an untouched new form is
// never saved.
func New(store RemoteRecordStore, base models.Record, cfg config.Autosave, log *logger.Logger, opts ...Option) *Synchronizer {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.ConfirmDelay <= 0 {
		cfg.ConfirmDelay = DefaultConfirmDelay
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = DefaultSaveTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Synchronizer{
		store:     store,
		clock:     clock.Real(),
		cfg:       cfg,
		logger:    log.WithRecord(base.ID, string(base.Kind)),
		draft:     base.Clone(),
		syncState: Clean,
		dirty:     make(dirtySet),
	}
	for _, opt := range opts {
		opt(s)
	}

	// an unserializable base leaves the fingerprint empty, any draft differs
	s.savedFingerprint, _ = Fingerprint(s.draft.Fields)

	return s
}

// Initialize reconciles the draft with a record fetched from the server.
//
// Fields the user edited locally and has not saved yet keep their local
// value; every other field takes the remote value. The remote content
// becomes the saved baseline. A nil remote means the record does not exist
// yet: on first use the draft keeps its defaults, afterwards the call is a
// no-op. Calling Initialize again with the same server state has no effect,
// and a copy older than the one already adopted is ignored.
func (s *Synchronizer) Initialize(remote *models.Record) {
	s.mu.Lock()

	if s.closed || s.closing {
		s.mu.Unlock()
		return
	}

	if remote == nil {
		s.initialized = true
		s.mu.Unlock()
		return
	}

	fp, err := Fingerprint(remote.Fields)
	if err != nil {
		s.mu.Unlock()
		s.logger.Err(err).Str("record_id", remote.ID).Msg("ignoring unserializable remote record")
		return
	}

	if s.initialized && remote.ID == s.draft.ID {
		if remote.Version < s.draft.Version ||
			(remote.Version == s.draft.Version && fp == s.savedFingerprint) {
			s.mu.Unlock()
			return
		}
	}

	s.draft.Fields = mergeFields(remote.Fields, s.draft.Fields, s.dirty.paths())
	adoptEnvelope(&s.draft, *remote)
	s.savedFingerprint = fp
	s.initialized = true

	// the merge may have made local edits redundant
	if s.inflight == nil && (s.syncState == Dirty || s.syncState == Error) {
		if draftFP, err := Fingerprint(s.draft.Fields); err == nil && draftFP == s.savedFingerprint {
			s.dirty.reset()
			s.stopDebounceLocked()
			s.syncState = Clean
			s.lastErr = nil
		}
	}

	state := s.publishLocked()
	s.mu.Unlock()

	s.logger.Debug().
		Str("record_id", remote.ID).
		Int64("version", remote.Version).
		Int("dirty_paths", len(state.DirtyPaths)).
		Msg("initialized from remote record")
	s.notify(state)
}

// Refresh fetches the server copy of the record and reconciles it through
// Initialize. A record that was never saved has nothing to fetch.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	id, closed := s.draft.ID, s.closed || s.closing
	s.mu.Unlock()

	if closed {
		return ErrClosed
	}
	if id == "" {
		return nil
	}

	remote, err := s.store.FetchOne(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("error_kind", string(KindOf(err))).Msg("refresh failed")
		return fmt.Errorf("refresh record %s: %w", id, err)
	}

	s.Initialize(&remote)
	return nil
}

// UpdateField sets the value at a dot path in the draft and schedules a
// save. While a save is in flight the new save is deferred until it
// resolves. Returns ErrInvalidPath for malformed paths and ErrClosed after
// Close.
func (s *Synchronizer) UpdateField(path string, value any) error {
	if _, err := models.SplitPath(path); err != nil {
		return fmt.Errorf("update field %q: %w", path, err)
	}

	s.mu.Lock()
	if s.closed || s.closing {
		s.mu.Unlock()
		return ErrClosed
	}

	if s.draft.Fields == nil {
		s.draft.Fields = models.Fields{}
	}
	if err := s.draft.Fields.Set(path, value); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("update field %q: %w", path, err)
	}

	s.editSeq++
	s.dirty.mark(path, s.editSeq)
	s.stopConfirmLocked()

	if s.inflight != nil {
		s.trailing = true
	} else {
		s.syncState = Dirty
		s.scheduleLocked()
	}

	state := s.publishLocked()
	s.mu.Unlock()

	s.notify(state)
	return nil
}

// State returns the current snapshot.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive every published State. fn runs in the
// goroutine that caused the change and must not block; it must not call
// UpdateField, Flush or Close synchronously. The returned function removes
// the subscription.
func (s *Synchronizer) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Flush saves the draft now. A pending debounce timer is cancelled and an
// in-flight save is awaited rather than duplicated. When the draft matches
// the saved baseline no request is made and the current draft is returned.
func (s *Synchronizer) Flush(ctx context.Context) (models.Record, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.Record{}, ErrClosed
	}
	s.stopDebounceLocked()
	s.mu.Unlock()

	return s.save(ctx)
}

// Cancel disarms the pending debounce timer. The draft stays dirty and is
// saved by the next edit or Flush.
func (s *Synchronizer) Cancel() {
	s.mu.Lock()
	if s.debounce == nil {
		s.mu.Unlock()
		return
	}
	s.stopDebounceLocked()
	state := s.publishLocked()
	s.mu.Unlock()

	s.notify(state)
}

// Close releases the synchronizer. The draft is flushed first and the flush
// error is returned, unless DiscardOnClose is set, in which case pending
// saves are cancelled and unsaved edits are dropped. Edits are refused with
// ErrClosed as soon as Close starts, so the flush covers every accepted
// edit. Close is idempotent.
func (s *Synchronizer) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed || s.closing {
		s.mu.Unlock()
		return nil
	}
	s.closing = true
	s.mu.Unlock()

	var err error
	if !s.cfg.DiscardOnClose {
		_, err = s.Flush(ctx)
	}

	s.mu.Lock()
	s.closing = false
	s.closed = true
	s.stopDebounceLocked()
	s.stopConfirmLocked()
	s.trailing = false
	s.mu.Unlock()

	if err != nil {
		s.logger.Err(err).Msg("flush on close failed")
	}
	return err
}

// save runs one save cycle: wait for any in-flight save, skip when nothing
// changed, otherwise snapshot the draft and call the store.
func (s *Synchronizer) save(ctx context.Context) (models.Record, error) {
	s.mu.Lock()
	for s.inflight != nil {
		done := s.inflight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return models.Record{}, ctx.Err()
		}
		s.mu.Lock()
	}
	s.stopDebounceLocked()

	kind := string(s.draft.Kind)
	fp, fpErr := Fingerprint(s.draft.Fields)
	if fpErr == nil && fp == s.savedFingerprint {
		s.dirty.reset()
		s.trailing = false
		s.lastErr = nil
		// a running confirm window finishes the saved->clean transition
		if s.syncState != Saved {
			s.stopConfirmLocked()
			s.syncState = Clean
		}
		current := s.draft.Clone()
		state := s.publishLocked()
		s.mu.Unlock()

		metrics.AutosaveSuppressedTotal.WithLabelValues(kind).Inc()
		s.logger.Debug().Msg("draft unchanged, save skipped")
		s.notify(state)
		return current, nil
	}

	snapshot := s.draft.Clone()
	snapshotSeq := s.editSeq
	done := make(chan struct{})
	s.inflight = done
	s.trailing = false
	s.stopConfirmLocked()
	s.syncState = Saving
	state := s.publishLocked()
	s.mu.Unlock()

	s.notify(state)

	log := s.logger.WithRecord(snapshot.ID, kind)
	log.Debug().Int64("version", snapshot.Version).Msg("saving draft")
	metrics.AutosaveAttemptsTotal.WithLabelValues(kind).Inc()

	started := s.clock.Now()
	saved, err := s.store.SaveOne(log.WithContext(ctx), snapshot)
	metrics.AutosaveDurationSeconds.WithLabelValues(kind).Observe(s.clock.Now().Sub(started).Seconds())

	s.mu.Lock()
	s.inflight = nil
	close(done)

	if err != nil {
		s.lastErr = err
		s.syncState = Error
		if s.trailing {
			s.trailing = false
			s.scheduleLocked()
		}
		state = s.publishLocked()
		s.mu.Unlock()

		metrics.AutosaveFailuresTotal.WithLabelValues(kind, string(KindOf(err))).Inc()
		log.Err(err).Str("error_kind", string(KindOf(err))).Msg("save failed, draft kept")
		s.notify(state)
		return models.Record{}, err
	}

	s.applySavedLocked(saved, snapshot, snapshotSeq)
	now := s.clock.Now()
	s.lastSavedAt = &now
	s.lastErr = nil

	if s.trailing {
		s.trailing = false
		s.syncState = Dirty
		s.scheduleLocked()
	} else {
		s.syncState = Saved
		s.startConfirmLocked()
	}
	state = s.publishLocked()
	s.mu.Unlock()

	log.Info().
		Str("record_id", saved.ID).
		Int64("version", saved.Version).
		Msg("draft saved")
	s.notify(state)
	return saved.Clone(), nil
}

// applySavedLocked adopts the stored record as the new baseline. Edits made
// after the snapshot was taken stay in the draft and remain dirty.
func (s *Synchronizer) applySavedLocked(saved, snapshot models.Record, snapshotSeq uint64) {
	fields := saved.Fields
	if fields == nil {
		fields = snapshot.Fields
	}

	s.dirty.settle(snapshotSeq)
	s.draft.Fields = mergeFields(fields, s.draft.Fields, s.dirty.paths())
	adoptEnvelope(&s.draft, saved)

	fp, err := Fingerprint(fields)
	if err != nil {
		fp = ""
	}
	s.savedFingerprint = fp
	s.initialized = true
}

func (s *Synchronizer) scheduleLocked() {
	s.stopDebounceLocked()
	if s.closed {
		return
	}

	s.debounceGen++
	gen := s.debounceGen
	s.debounce = s.clock.AfterFunc(s.cfg.DebounceDelay, func() {
		s.onDebounce(gen)
	})
}

func (s *Synchronizer) stopDebounceLocked() {
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.debounceGen++
}

func (s *Synchronizer) onDebounce(gen uint64) {
	s.mu.Lock()
	if gen != s.debounceGen || s.debounce == nil || s.closed {
		s.mu.Unlock()
		return
	}
	s.debounce = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SaveTimeout)
	defer cancel()

	// failures are recorded in the state
	_, _ = s.save(ctx)
}

func (s *Synchronizer) startConfirmLocked() {
	s.stopConfirmLocked()

	s.confirmGen++
	gen := s.confirmGen
	s.confirm = s.clock.AfterFunc(s.cfg.ConfirmDelay, func() {
		s.onConfirm(gen)
	})
}

func (s *Synchronizer) stopConfirmLocked() {
	if s.confirm != nil {
		s.confirm.Stop()
		s.confirm = nil
	}
	s.confirmGen++
}

func (s *Synchronizer) onConfirm(gen uint64) {
	s.mu.Lock()
	if gen != s.confirmGen || s.syncState != Saved {
		s.mu.Unlock()
		return
	}
	s.confirm = nil
	s.syncState = Clean
	state := s.publishLocked()
	s.mu.Unlock()

	s.notify(state)
}

func (s *Synchronizer) publishLocked() State {
	s.seq++
	return s.snapshotLocked()
}

func (s *Synchronizer) snapshotLocked() State {
	var savedAt *time.Time
	if s.lastSavedAt != nil {
		t := *s.lastSavedAt
		savedAt = &t
	}

	return State{
		Seq:         s.seq,
		Draft:       s.draft.Clone(),
		SyncState:   s.syncState,
		LastSavedAt: savedAt,
		LastError:   s.lastErr,
		DirtyPaths:  s.dirty.paths(),
		SavePending: s.debounce != nil,
	}
}

func (s *Synchronizer) notify(state State) {
	s.mu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(state)
	}
}
