// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-draft-keeper/internal/clock"
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

var testAutosave = config.Autosave{
	DebounceDelay: 3 * time.Second,
	ConfirmDelay:  2 * time.Second,
	SaveTimeout:   10 * time.Second,
}

// fakeStore records every SaveOne call. It assigns an id on create, bumps
// the version and echoes the submitted fields back.
type fakeStore struct {
	mu      sync.Mutex
	calls   []models.Record
	errs    []error // consumed one per call, nil entries succeed
	gate    chan struct{}
	started chan struct{}

	remote   models.Record
	fetchErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{started: make(chan struct{}, 16)}
}

func (f *fakeStore) SaveOne(ctx context.Context, r models.Record) (models.Record, error) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Clone())
	gate := f.gate
	var err error
	if len(f.errs) > 0 {
		err = f.errs[0]
		f.errs = f.errs[1:]
	}
	f.mu.Unlock()

	f.started <- struct{}{}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return models.Record{}, ctx.Err()
		}
	}

	if err != nil {
		return models.Record{}, err
	}

	out := r.Clone()
	if out.ID == "" {
		out.ID = "rec-1"
	}
	out.Version++
	out.Revision = fmt.Sprintf("rev-%d", out.Version)
	return out, nil
}

func (f *fakeStore) FetchOne(_ context.Context, id string) (models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return models.Record{}, f.fetchErr
	}
	if f.remote.ID != id {
		return models.Record{}, ErrNotFound
	}
	return f.remote.Clone(), nil
}

func (f *fakeStore) setRemote(r models.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remote = r.Clone()
}

func (f *fakeStore) block() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = make(chan struct{})
	return f.gate
}

func (f *fakeStore) unblock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = nil
}

func (f *fakeStore) failNext(errs ...error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, errs...)
}

func (f *fakeStore) Calls() []models.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Record, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeStore) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(5 * time.Second):
		t.Fatal("SaveOne was not called")
	}
}

func newTestSynchronizer(t *testing.T, store RemoteRecordStore, cfg config.Autosave) (*Synchronizer, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(epoch)
	base := models.Record{Kind: models.BusinessPlan, Fields: models.BusinessPlan.Defaults()}
	return New(store, base, cfg, logger.Nop(), WithClock(clk)), clk
}

// advanceAsync runs clk.Advance in its own goroutine so that a blocking
// store does not stall the test. The returned channel closes when Advance
// returns.
func advanceAsync(clk *clock.Fake, d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		clk.Advance(d)
	}()
	return done
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out")
	}
}

func fieldString(t *testing.T, f models.Fields, path string) string {
	t.Helper()
	v, ok := f.Get(path)
	require.True(t, ok, "missing %s", path)
	s, ok := v.(string)
	require.True(t, ok, "%s is %T", path, v)
	return s
}

func TestSynchronizer_CoalescesEditsIntoOneSave(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Draft A"))
	assert.Equal(t, Dirty, s.State().SyncState)

	clk.Advance(time.Second)
	require.NoError(t, s.UpdateField("title", "Draft B"))

	clk.Advance(2 * time.Second)
	assert.Empty(t, store.Calls(), "debounce restarted by the second edit")

	clk.Advance(time.Second)
	calls := store.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Draft B", fieldString(t, calls[0].Fields, "title"))

	st := s.State()
	assert.Equal(t, Saved, st.SyncState)
	assert.Equal(t, "rec-1", st.Draft.ID)
	assert.Equal(t, int64(1), st.Draft.Version)
	assert.Empty(t, st.DirtyPaths)
	require.NotNil(t, st.LastSavedAt)
	assert.Equal(t, epoch.Add(4*time.Second), *st.LastSavedAt)

	clk.Advance(2 * time.Second)
	assert.Equal(t, Clean, s.State().SyncState)
	assert.Len(t, store.Calls(), 1)
}

func TestSynchronizer_SuppressesNoOpSave(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)

	remote := models.Record{ID: "rec-9", Kind: models.BusinessPlan, Version: 4, Fields: models.Fields{"title": "Bakery"}}
	s.Initialize(&remote)

	require.NoError(t, s.UpdateField("title", "Bakery & Co"))
	require.NoError(t, s.UpdateField("title", "Bakery"))
	clk.Advance(time.Minute)

	assert.Empty(t, store.Calls())
	st := s.State()
	assert.Equal(t, Clean, st.SyncState)
	assert.Empty(t, st.DirtyPaths)
	assert.False(t, st.SavePending)

	rec, err := s.Flush(context.Background())
	require.NoError(t, err)
	assert.Empty(t, store.Calls())
	assert.Equal(t, "Bakery", rec.Title())
}

func TestSynchronizer_UntouchedNewFormIsNotSaved(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	_, err := s.Flush(context.Background())
	require.NoError(t, err)
	assert.Empty(t, store.Calls())
}

func TestSynchronizer_FailedSaveKeepsDraft(t *testing.T) {
	store := newFakeStore()
	store.failNext(fmt.Errorf("dial tcp: %w", ErrNetwork))
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("summary", "Fresh bread daily"))
	clk.Advance(3 * time.Second)

	st := s.State()
	assert.Equal(t, Error, st.SyncState)
	require.ErrorIs(t, st.LastError, ErrNetwork)
	assert.Equal(t, KindNetwork, KindOf(st.LastError))
	assert.Equal(t, "Fresh bread daily", fieldString(t, st.Draft.Fields, "summary"))
	assert.Equal(t, []string{"summary"}, st.DirtyPaths)
	assert.Nil(t, st.LastSavedAt)

	// no automatic retry
	clk.Advance(time.Hour)
	assert.Len(t, store.Calls(), 1)

	// the next edit retries with everything unsaved so far
	require.NoError(t, s.UpdateField("title", "Bakery"))
	assert.Equal(t, Dirty, s.State().SyncState)
	clk.Advance(3 * time.Second)

	calls := store.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "Fresh bread daily", fieldString(t, calls[1].Fields, "summary"))
	assert.Equal(t, "Bakery", fieldString(t, calls[1].Fields, "title"))

	st = s.State()
	assert.Equal(t, Saved, st.SyncState)
	assert.NoError(t, st.LastError)
}

func TestSynchronizer_FlushRetriesAfterFailure(t *testing.T) {
	store := newFakeStore()
	store.failNext(fmt.Errorf("%w: version 2 is stale", ErrConflict))
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))

	_, err := s.Flush(context.Background())
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, Error, s.State().SyncState)

	rec, err := s.Flush(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.ID)
	assert.Len(t, store.Calls(), 2)
}

func TestSynchronizer_SingleFlightWithTrailingSave(t *testing.T) {
	store := newFakeStore()
	gate := store.block()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	advanced := advanceAsync(clk, 3*time.Second)
	store.waitStarted(t)

	assert.Equal(t, Saving, s.State().SyncState)

	// edits during the flight are kept and do not start a second request
	require.NoError(t, s.UpdateField("summary", "Sourdough"))
	st := s.State()
	assert.Equal(t, Saving, st.SyncState)
	assert.False(t, st.SavePending)
	assert.Len(t, store.Calls(), 1)

	store.unblock()
	close(gate)
	waitClosed(t, advanced)

	st = s.State()
	assert.Equal(t, Dirty, st.SyncState)
	assert.True(t, st.SavePending)
	assert.Equal(t, []string{"summary"}, st.DirtyPaths)
	assert.Equal(t, "Sourdough", fieldString(t, st.Draft.Fields, "summary"), "response merge keeps later edits")
	assert.Equal(t, int64(1), st.Draft.Version)

	clk.Advance(3 * time.Second)

	calls := store.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "rec-1", calls[1].ID)
	assert.Equal(t, int64(1), calls[1].Version)
	assert.Equal(t, "Sourdough", fieldString(t, calls[1].Fields, "summary"))
	assert.Equal(t, Saved, s.State().SyncState)
}

func TestSynchronizer_FailedFlightStillSchedulesTrailingSave(t *testing.T) {
	store := newFakeStore()
	gate := store.block()
	store.failNext(ErrNetwork)
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	advanced := advanceAsync(clk, 3*time.Second)
	store.waitStarted(t)

	require.NoError(t, s.UpdateField("summary", "Sourdough"))
	store.unblock()
	close(gate)
	waitClosed(t, advanced)

	st := s.State()
	assert.Equal(t, Error, st.SyncState)
	assert.True(t, st.SavePending)

	clk.Advance(3 * time.Second)
	calls := store.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "Bakery", fieldString(t, calls[1].Fields, "title"))
	assert.Equal(t, "Sourdough", fieldString(t, calls[1].Fields, "summary"))
}

func TestSynchronizer_FlushIsIdempotent(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))

	first, err := s.Flush(context.Background())
	require.NoError(t, err)
	second, err := s.Flush(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.Calls(), 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Version, second.Version)

	// the cancelled debounce timer must not fire a late save
	clk.Advance(time.Minute)
	assert.Len(t, store.Calls(), 1)
}

func TestSynchronizer_ConcurrentFlushSharesInFlightSave(t *testing.T) {
	store := newFakeStore()
	gate := store.block()
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)
	require.NoError(t, s.UpdateField("title", "Bakery"))

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[0] = s.Flush(context.Background())
	}()
	store.waitStarted(t)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, errs[1] = s.Flush(context.Background())
	}()

	store.unblock()
	close(gate)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Len(t, store.Calls(), 1)
	assert.Equal(t, Saved, s.State().SyncState)
}

func TestSynchronizer_FlushWaitHonoursContext(t *testing.T) {
	store := newFakeStore()
	gate := store.block()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)
	require.NoError(t, s.UpdateField("title", "Bakery"))

	advanced := advanceAsync(clk, 3*time.Second)
	store.waitStarted(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Flush(ctx)
	require.ErrorIs(t, err, context.Canceled)

	store.unblock()
	close(gate)
	waitClosed(t, advanced)
	assert.Len(t, store.Calls(), 1)
}

func TestSynchronizer_InitializeMergesPerField(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestSynchronizer(t, store, testAutosave)

	// typed before the fetch completed
	require.NoError(t, s.UpdateField("title", "Local title"))
	s.Cancel()

	remote := models.Record{
		ID:      "rec-7",
		Kind:    models.BusinessPlan,
		Version: 3,
		Fields: models.Fields{
			"title":   "Remote title",
			"summary": "Remote summary",
			"market":  map[string]any{"target_audience": "students"},
		},
	}
	s.Initialize(&remote)

	st := s.State()
	want := models.Fields{
		"title":   "Local title",
		"summary": "Remote summary",
		"market":  map[string]any{"target_audience": "students"},
	}
	if diff := cmp.Diff(want, st.Draft.Fields); diff != "" {
		t.Errorf("merged draft mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "rec-7", st.Draft.ID)
	assert.Equal(t, int64(3), st.Draft.Version)
	assert.Equal(t, []string{"title"}, st.DirtyPaths)

	// same server state again changes nothing
	s.Initialize(&remote)
	assert.Equal(t, st.Seq, s.State().Seq)

	// a nil remote after initialization is a no-op
	s.Initialize(nil)
	assert.Equal(t, st.Seq, s.State().Seq)
}

func TestSynchronizer_InitializeCleansRedundantEdits(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	remote := models.Record{ID: "rec-3", Kind: models.BusinessPlan, Version: 1, Fields: models.Fields{"title": "Bakery"}}
	s.Initialize(&remote)

	st := s.State()
	assert.Equal(t, Clean, st.SyncState)
	assert.False(t, st.SavePending)
	assert.Empty(t, st.DirtyPaths)

	clk.Advance(time.Minute)
	assert.Empty(t, store.Calls())
}

func TestSynchronizer_EditDuringConfirmWindow(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	clk.Advance(3 * time.Second)
	require.Equal(t, Saved, s.State().SyncState)

	clk.Advance(time.Second)
	require.NoError(t, s.UpdateField("title", "Bakery 2"))
	assert.Equal(t, Dirty, s.State().SyncState)

	// the old confirm timer must not flip the dirty draft to clean
	clk.Advance(time.Second)
	assert.Equal(t, Dirty, s.State().SyncState)

	clk.Advance(2 * time.Second)
	assert.Len(t, store.Calls(), 2)
	assert.Equal(t, Saved, s.State().SyncState)
}

func TestSynchronizer_UpdateFieldInvalidPath(t *testing.T) {
	s, clk := newTestSynchronizer(t, newFakeStore(), testAutosave)

	err := s.UpdateField("market..competitors", "none")
	require.ErrorIs(t, err, ErrInvalidPath)

	st := s.State()
	assert.Equal(t, Clean, st.SyncState)
	assert.Zero(t, clk.Pending())
}

func TestSynchronizer_Subscribe(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	var mu sync.Mutex
	var seen []SyncState
	unsubscribe := s.Subscribe(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, st.SyncState)
	})

	require.NoError(t, s.UpdateField("title", "Bakery"))
	clk.Advance(3 * time.Second)
	clk.Advance(2 * time.Second)

	unsubscribe()
	unsubscribe()
	require.NoError(t, s.UpdateField("title", "Bakery 2"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []SyncState{Dirty, Saving, Saved, Clean}, seen)
}

func TestSynchronizer_CloseFlushes(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, s.Close(context.Background()))

	assert.Len(t, store.Calls(), 1)
	assert.Zero(t, clk.Pending())
	assert.ErrorIs(t, s.UpdateField("title", "late"), ErrClosed)

	_, err := s.Flush(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSynchronizer_CloseDiscards(t *testing.T) {
	store := newFakeStore()
	cfg := testAutosave
	cfg.DiscardOnClose = true
	s, clk := newTestSynchronizer(t, store, cfg)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	require.NoError(t, s.Close(context.Background()))

	clk.Advance(time.Minute)
	assert.Empty(t, store.Calls())
	assert.Equal(t, Dirty, s.State().SyncState)
}

func TestSynchronizer_CloseRefusesEditsDuringFlush(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 1, Fields: models.Fields{"title": "Bakery"}})

	require.NoError(t, s.UpdateField("title", "Bakery & Co"))

	gate := store.block()
	closed := make(chan error, 1)
	go func() { closed <- s.Close(context.Background()) }()
	store.waitStarted(t)

	assert.ErrorIs(t, s.UpdateField("summary", "typed while closing"), ErrClosed)
	assert.ErrorIs(t, s.Refresh(context.Background()), ErrClosed)

	close(gate)
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}

	calls := store.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Bakery & Co", fieldString(t, calls[0].Fields, "title"))

	st := s.State()
	assert.NotEqual(t, Dirty, st.SyncState)
	assert.Empty(t, st.DirtyPaths)
	assert.Zero(t, clk.Pending())
}

func TestSynchronizer_InitializeAfterCloseIsIgnored(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 1, Fields: models.Fields{"title": "Bakery"}})
	require.NoError(t, s.Close(context.Background()))

	var notified int
	s.Subscribe(func(State) { notified++ })

	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 2, Fields: models.Fields{"title": "Changed elsewhere"}})

	st := s.State()
	assert.Equal(t, int64(1), st.Draft.Version)
	assert.Equal(t, "Bakery", fieldString(t, st.Draft.Fields, "title"))
	assert.Zero(t, notified)
}

func TestSynchronizer_CancelKeepsDraftDirty(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	require.NoError(t, s.UpdateField("title", "Bakery"))
	s.Cancel()

	st := s.State()
	assert.Equal(t, Dirty, st.SyncState)
	assert.False(t, st.SavePending)

	clk.Advance(time.Minute)
	assert.Empty(t, store.Calls())
}

func TestSynchronizer_DefaultsApplied(t *testing.T) {
	s := New(newFakeStore(), models.Record{Kind: models.CV}, config.Autosave{}, nil)

	assert.Equal(t, DefaultDebounceDelay, s.cfg.DebounceDelay)
	assert.Equal(t, DefaultConfirmDelay, s.cfg.ConfirmDelay)
	assert.Equal(t, DefaultSaveTimeout, s.cfg.SaveTimeout)
	assert.NotNil(t, s.State().Draft.Fields)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{fmt.Errorf("wrap: %w", ErrNetwork), KindNetwork},
		{ErrConflict, KindConflict},
		{ErrValidation, KindValidation},
		{ErrNotFound, KindNotFound},
		{context.DeadlineExceeded, KindCanceled},
		{errors.New("boom"), KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), "%v", tt.err)
	}
}

func TestSynchronizer_RefreshMergesServerCopy(t *testing.T) {
	store := newFakeStore()
	s, clk := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 1, Fields: models.Fields{"title": "Bakery", "summary": "Bread"}})

	require.NoError(t, s.UpdateField("title", "Bakery & Co"))

	store.setRemote(models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 2, Fields: models.Fields{"title": "Bakery", "summary": "Bread and cakes"}})
	require.NoError(t, s.Refresh(context.Background()))

	st := s.State()
	assert.Equal(t, "Bakery & Co", fieldString(t, st.Draft.Fields, "title"))
	assert.Equal(t, "Bread and cakes", fieldString(t, st.Draft.Fields, "summary"))
	assert.Equal(t, int64(2), st.Draft.Version)
	assert.Equal(t, Dirty, st.SyncState)

	clk.Advance(3 * time.Second)
	require.Len(t, store.Calls(), 1)
	assert.Equal(t, int64(2), store.Calls()[0].Version)
}

func TestSynchronizer_RefreshUnsavedRecordIsNoOp(t *testing.T) {
	store := newFakeStore()
	store.fetchErr = errors.New("must not be called")
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(nil)

	assert.NoError(t, s.Refresh(context.Background()))
}

func TestSynchronizer_RefreshError(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 1, Fields: models.Fields{"title": "x"}})

	store.fetchErr = fmt.Errorf("dial: %w", ErrNetwork)
	err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, Clean, s.State().SyncState, "a failed refresh does not touch the state")
}

func TestSynchronizer_InitializeIgnoresOlderCopy(t *testing.T) {
	store := newFakeStore()
	s, _ := newTestSynchronizer(t, store, testAutosave)
	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 3, Fields: models.Fields{"title": "new"}})

	s.Initialize(&models.Record{ID: "rec-1", Kind: models.BusinessPlan, Version: 2, Fields: models.Fields{"title": "old"}})

	st := s.State()
	assert.Equal(t, int64(3), st.Draft.Version)
	assert.Equal(t, "new", fieldString(t, st.Draft.Fields, "title"))
}
