// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record is a form document (business plan, CV, cover letter) as stored by
// the records server. The envelope (ID, Kind, Version, Revision, timestamps)
// is owned by the server; Fields is owned by whoever edits the form.
type Record struct {
	// ID is assigned by the server on the first successful save and is empty
	// for records that were never persisted.
	ID string `json:"id,omitempty"`

	// Kind selects the form schema the record follows.
	Kind RecordKind `json:"kind"`

	// Version is the optimistic-locking counter. A save must carry the
	// version it was based on; the server rejects stale versions with 409.
	Version int64 `json:"version"`

	// Revision is a sortable identifier of the stored state, regenerated on
	// every successful save.
	Revision string `json:"revision,omitempty"`

	// Fields holds the form body.
	Fields Fields `json:"fields"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	out.Fields = r.Fields.Clone()
	if r.CreatedAt != nil {
		t := *r.CreatedAt
		out.CreatedAt = &t
	}
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// Title returns the human-readable title of the record, taken from the
// kind's title field. Empty when the field is unset or not a string.
func (r Record) Title() string {
	v, ok := r.Fields.Get(r.Kind.TitlePath())
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Summary builds the list-view descriptor of r.
func (r Record) Summary() RecordSummary {
	return RecordSummary{
		ID:        r.ID,
		Kind:      r.Kind,
		Title:     r.Title(),
		Version:   r.Version,
		UpdatedAt: r.UpdatedAt,
	}
}

// RecordSummary is the lightweight descriptor returned by the list endpoint.
type RecordSummary struct {
	ID        string     `json:"id"`
	Kind      RecordKind `json:"kind"`
	Title     string     `json:"title"`
	Version   int64      `json:"version"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RecordList is the body of GET /api/records/.
type RecordList struct {
	Records []RecordSummary `json:"records"`
	Length  int             `json:"length"`
}
