// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
)

const (
	defaultRefreshInterval = time.Minute
	defaultRefreshTimeout  = 15 * time.Second
)

type refreshJob struct {
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	target *synchronizer.Synchronizer
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that refreshes the watched synchronizer every
// interval, bounding each fetch by timeout. Non-positive values fall back to
// one minute and fifteen seconds. The job is idle until Start is called.
func NewRefreshJob(interval, timeout time.Duration, logger *logger.Logger) RefreshJob {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if timeout <= 0 {
		timeout = defaultRefreshTimeout
	}
	return &refreshJob{interval: interval, timeout: timeout, logger: logger}
}

func (j *refreshJob) Watch(s *synchronizer.Synchronizer) {
	j.mu.Lock()
	j.target = s
	j.mu.Unlock()
}

// Start implements RefreshJob. It stops any previously running loop first.
func (j *refreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

func (j *refreshJob) refresh(ctx context.Context) {
	j.mu.Lock()
	target := j.target
	j.mu.Unlock()

	if target == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	err := target.Refresh(ctx)
	switch {
	case err == nil:
	case errors.Is(err, synchronizer.ErrClosed):
		j.mu.Lock()
		if j.target == target {
			j.target = nil
		}
		j.mu.Unlock()
	default:
		j.logger.Warn().Err(err).Str("func", "refreshJob.refresh").Msg("periodic refresh failed")
	}
}

// Stop implements RefreshJob. It cancels the loop and waits for it to exit.
// Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
