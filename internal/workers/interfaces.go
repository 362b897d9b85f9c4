// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines, which
// exit when ctx is cancelled or Stop is called. Stop blocks until those
// goroutines have returned and is safe to call on a worker that never
// started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc; wg sync.WaitGroup }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // spawn background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // cancel and wait
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
