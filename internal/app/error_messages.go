// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// draft-keeper server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place lets the client recognise a server message
// without parsing free text.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic shape validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUnknownRecordKind is returned when a record or a list filter names
	// a kind the server does not know.
	MsgUnknownRecordKind = "unknown record kind"

	// MsgRecordIDMismatch is returned when the id in the body of a PUT
	// differs from the id in its path.
	MsgRecordIDMismatch = "record id in body does not match path"

	// MsgNoRecordIDProvided is returned when a record route is reached
	// without an id path parameter.
	MsgNoRecordIDProvided = "no record ID provided"

	// MsgRecordNotFound is returned when the requested record does not
	// exist.
	MsgRecordNotFound = "record not found"

	// MsgRecordAlreadyExists is returned when a create collides with an
	// existing id.
	MsgRecordAlreadyExists = "record already exists"

	// MsgVersionConflict is returned when an update is based on a stale
	// version of the record.
	MsgVersionConflict = "record version conflict"

	// MsgInvalidSignature is returned when the HashSHA256 header does not
	// match the request body.
	MsgInvalidSignature = "invalid request signature"

	// MsgMethodNotAllowed is returned for a known route used with the wrong
	// HTTP method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
