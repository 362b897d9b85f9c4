// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the form client runtime.
//
// It wires the terminal UI, the editor services and the background refresh
// job into a single process lifecycle.
package client
