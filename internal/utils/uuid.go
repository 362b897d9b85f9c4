// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUIDGenerator issues record identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RevisionGenerator issues lexically sortable record revisions.
type RevisionGenerator struct {
}

func NewRevisionGenerator() *RevisionGenerator {
	return &RevisionGenerator{}
}

// Generate returns a new ULID. Revisions issued later sort after earlier
// ones.
func (g *RevisionGenerator) Generate() string {
	return ulid.Make().String()
}
