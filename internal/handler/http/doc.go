// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the records server.
//
// It exposes route wiring, request handlers, and middleware used by the
// records API. Cross-cutting concerns such as request tracing, access
// logging, response compression, and body integrity checks are handled in
// this package before requests are delegated to the service layer.
package http
