// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the records API over HTTP.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown that lets in-flight saves finish.
package server
