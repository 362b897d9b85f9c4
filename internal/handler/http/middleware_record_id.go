// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// withRecordID moves the {id} path parameter into the request context.
func (h *Handler) withRecordID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			utils.WriteError(w, http.StatusBadRequest, app.MsgNoRecordIDProvided)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithRecordID(r.Context(), id)))
	})
}
