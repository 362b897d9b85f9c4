// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/app"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order, the first match wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrUnknownRecordKind, errorResponse{http.StatusBadRequest, app.MsgUnknownRecordKind}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrKindMismatch, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgRecordNotFound}},
	{store.ErrRecordAlreadyExists, errorResponse{http.StatusConflict, app.MsgRecordAlreadyExists}},
	{store.ErrVersionConflict, errorResponse{http.StatusConflict, app.MsgVersionConflict}},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
