// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Status-class errors produced by mapHTTPError. The server's message follows
// the sentinel text after a colon.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrTransport is returned when the request never produced an HTTP
	// response (connection refused, timeout, DNS failure).
	ErrTransport = errors.New("transport error")

	// ErrInvalidSignature is returned when a signed response does not match
	// its HashSHA256 header.
	ErrInvalidSignature = errors.New("response signature mismatch")
)
