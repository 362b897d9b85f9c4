// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

// withSignature checks the HashSHA256 header against the raw request body.
// A request without the header passes unchecked; with signing disabled on
// the server every request passes.
func (h *Handler) withSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		signature := r.Header.Get(utils.HashHeader)
		if signature == "" || !h.signer.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withSignature").Msg("failed to read request body")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.signer.Verify(body, signature) {
			log.Error().Str("func", "*Handler.withSignature").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidSignature)
			return
		}

		next.ServeHTTP(w, r)
	})
}
