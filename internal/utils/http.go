// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON serializes data to JSON and writes it with the given status code.
// The "Content-Type" header is set to "application/json". When signer is
// enabled the body digest is added in the [HashHeader] header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, record, http.StatusOK, signer)
//	WriteJSON(w, ErrorResponse{Error: "not found"}, http.StatusNotFound, nil)
func WriteJSON(w http.ResponseWriter, data any, statusCode int, signer *Signer) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if signer.Enabled() {
		w.Header().Set(HashHeader, signer.Sign(jsonData))
	}
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, msg string) {
	_, _ = WriteJSON(w, ErrorResponse{Error: msg}, statusCode, nil)
}
