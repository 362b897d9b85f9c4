// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"sort"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// dirtySet maps an edited field path to the edit sequence number of its most
// recent change.
type dirtySet map[string]uint64

func (d dirtySet) mark(path string, seq uint64) {
	d[path] = seq
}

// settle forgets paths whose latest edit is covered by a save taken at seq.
func (d dirtySet) settle(seq uint64) {
	for p, s := range d {
		if s <= seq {
			delete(d, p)
		}
	}
}

func (d dirtySet) reset() {
	clear(d)
}

// paths returns the dirty paths sorted, so that a parent path is applied
// before any of its children.
func (d dirtySet) paths() []string {
	out := make([]string, 0, len(d))
	for p := range d {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// mergeFields reconciles a server copy with the local draft: the result is
// remote with every dirty path taken from local. A dirty path missing from
// local is removed from the result.
func mergeFields(remote, local models.Fields, dirty []string) models.Fields {
	out := remote.Clone()
	for _, p := range dirty {
		if v, ok := local.Get(p); ok {
			_ = out.Set(p, v)
			continue
		}
		out.Delete(p)
	}
	return out
}

// adoptEnvelope copies the server-owned part of src onto dst.
func adoptEnvelope(dst *models.Record, src models.Record) {
	if src.ID != "" {
		dst.ID = src.ID
	}
	if src.Kind != "" {
		dst.Kind = src.Kind
	}
	dst.Version = src.Version
	dst.Revision = src.Revision

	cp := src.Clone()
	dst.CreatedAt = cp.CreatedAt
	dst.UpdatedAt = cp.UpdatedAt
}
