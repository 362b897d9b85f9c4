// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/utils"
	"github.com/MKhiriev/go-draft-keeper/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind := models.RecordKind(r.URL.Query().Get("kind"))

	list, err := h.services.RecordService.List(r.Context(), kind)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing records")
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, list, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, _ := utils.GetRecordIDFromContext(r.Context())

	record, err := h.services.RecordService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Str("record_id", id).Msg("error getting record")
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, record, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	created, err := h.services.RecordService.Create(r.Context(), record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error creating record")
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, _ := utils.GetRecordIDFromContext(r.Context())

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	// the path is authoritative; a body id may only repeat it
	if record.ID != "" && record.ID != id {
		utils.WriteError(w, http.StatusBadRequest, app.MsgRecordIDMismatch)
		return
	}
	record.ID = id

	updated, err := h.services.RecordService.Update(r.Context(), record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Str("record_id", id).Msg("error updating record")
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, updated, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status, h.signer); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status, msg := statusFromError(err)
	utils.WriteError(w, status, msg)
}
