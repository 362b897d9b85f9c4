// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/records", func(r chi.Router) {
		r.Get("/", h.listRecords)
		r.With(h.withSignature).Post("/", h.createRecord)

		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.withRecordID)
			r.Get("/", h.getRecord)
			r.With(h.withSignature).Put("/", h.updateRecord)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
