// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock abstracts wall-clock reads and deferred callbacks so that
// timer-driven components (debounced autosave, confirmation windows) can be
// driven deterministically in tests.
package clock

import "time"

// Timer is a cancellable deferred callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already ran or the timer was stopped before.
	Stop() bool
}

// Clock provides the current time and schedules callbacks.
type Clock interface {
	Now() time.Time
	// AfterFunc runs f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// Real returns the Clock backed by the time package.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
