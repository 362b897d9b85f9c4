// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// countingStore returns the same server copy on every fetch.
type countingStore struct {
	fetches atomic.Int64
	remote  models.Record
}

func (s *countingStore) FetchOne(_ context.Context, _ string) (models.Record, error) {
	s.fetches.Add(1)
	return s.remote, nil
}

func (s *countingStore) SaveOne(_ context.Context, r models.Record) (models.Record, error) {
	return r, nil
}

func newWatchedSynchronizer(t *testing.T, store *countingStore) *synchronizer.Synchronizer {
	t.Helper()
	s := synchronizer.New(store, models.Record{Kind: models.CV}, config.Autosave{}, logger.Nop())
	s.Initialize(&store.remote)
	return s
}

func TestRefreshJob_RefreshesWatchedRecord(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &countingStore{remote: models.Record{ID: "r1", Kind: models.CV, Version: 1}}
	s := newWatchedSynchronizer(t, store)

	job := NewRefreshJob(10*time.Millisecond, time.Second, logger.Nop())
	job.Watch(s)
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, store.fetches.Load(), int64(3))
	require.NoError(t, s.Close(context.Background()))
}

func TestRefreshJob_NoTarget(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &countingStore{remote: models.Record{ID: "r1", Kind: models.CV, Version: 1}}
	s := newWatchedSynchronizer(t, store)

	job := NewRefreshJob(10*time.Millisecond, time.Second, logger.Nop())
	job.Watch(s)
	job.Watch(nil)
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), store.fetches.Load())
}

func TestRefreshJob_DropsClosedTarget(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &countingStore{remote: models.Record{ID: "r1", Kind: models.CV, Version: 1}}
	s := newWatchedSynchronizer(t, store)
	require.NoError(t, s.Close(context.Background()))

	job := NewRefreshJob(10*time.Millisecond, time.Second, logger.Nop()).(*refreshJob)
	job.Watch(s)
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	job.mu.Lock()
	defer job.mu.Unlock()
	assert.Nil(t, job.target)
	assert.Equal(t, int64(0), store.fetches.Load())
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRefreshJob(0, 0, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Defaults(t *testing.T) {
	job := NewRefreshJob(-time.Second, 0, logger.Nop()).(*refreshJob)

	assert.Equal(t, defaultRefreshInterval, job.interval)
	assert.Equal(t, defaultRefreshTimeout, job.timeout)
}

func TestRefreshJob_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := NewRefreshJob(time.Hour, time.Second, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()
	job.Stop()
}
