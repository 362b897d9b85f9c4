// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors shared by the records
// server and the autosave client. Collectors are registered on the default
// registry at init time and exposed by the server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Autosave (client side)
// =============================================================================

var (
	// AutosaveAttemptsTotal counts save calls issued to the record store.
	AutosaveAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftkeeper_autosave_attempts_total",
			Help: "Total number of autosave requests sent to the record store",
		},
		[]string{"kind"},
	)

	// AutosaveSuppressedTotal counts scheduled saves skipped because the draft
	// matched the last saved fingerprint.
	AutosaveSuppressedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftkeeper_autosave_suppressed_total",
			Help: "Total number of autosaves skipped as no-ops",
		},
		[]string{"kind"},
	)

	// AutosaveFailuresTotal counts failed saves by error kind.
	AutosaveFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftkeeper_autosave_failures_total",
			Help: "Total number of failed autosave requests",
		},
		[]string{"kind", "error_kind"}, // "network", "conflict", "validation", "canceled", "unknown"
	)

	// AutosaveDurationSeconds observes the latency of save requests.
	AutosaveDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "draftkeeper_autosave_duration_seconds",
			Help:    "Latency of autosave requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

// =============================================================================
// Records API (server side)
// =============================================================================

var (
	// RecordsSavedTotal counts persisted records by kind and operation.
	RecordsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftkeeper_records_saved_total",
			Help: "Total number of records persisted",
		},
		[]string{"kind", "op"}, // "create", "update"
	)

	// RecordVersionConflictsTotal counts updates rejected for a stale version.
	RecordVersionConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftkeeper_record_version_conflicts_total",
			Help: "Total number of record updates rejected because of a stale version",
		},
		[]string{"kind"},
	)

	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draftkeeper_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "status"},
	)

	// HTTPRequestDurationSeconds observes HTTP handler latency.
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "draftkeeper_http_request_duration_seconds",
			Help:    "Latency of served HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
