// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RecordKind identifies the form schema of a [Record].
type RecordKind string

const (
	BusinessPlan RecordKind = "business_plan"
	CV           RecordKind = "cv"
	CoverLetter  RecordKind = "cover_letter"
)

// CompletionField is the top-level field in which the server stores the
// computed completion percentage of a record. It is derived data and never
// part of a form.
const CompletionField = "completion"

type kindSchema struct {
	title    string
	required []string
	form     []string
}

var schemas = map[RecordKind]kindSchema{
	BusinessPlan: {
		title:    "title",
		required: []string{"title", "summary", "market", "financials"},
		form: []string{
			"title",
			"summary",
			"market.target_audience",
			"market.competitors",
			"financials.initial_investment",
			"financials.monthly_revenue",
			"financials.monthly_costs",
		},
	},
	CV: {
		title:    "personal.full_name",
		required: []string{"personal", "summary", "experience", "skills"},
		form: []string{
			"personal.full_name",
			"personal.email",
			"personal.phone",
			"summary",
			"experience",
			"education",
			"skills",
		},
	},
	CoverLetter: {
		title:    "recipient.company",
		required: []string{"recipient", "body"},
		form: []string{
			"recipient.company",
			"recipient.position",
			"body",
			"closing",
		},
	},
}

// RecordKinds returns every supported kind.
func RecordKinds() []RecordKind {
	return []RecordKind{BusinessPlan, CV, CoverLetter}
}

// Valid reports whether k is a supported kind.
func (k RecordKind) Valid() bool {
	_, ok := schemas[k]
	return ok
}

// TitlePath is the field path used as the record title in list views.
func (k RecordKind) TitlePath() string {
	return schemas[k].title
}

// RequiredSections lists the top-level sections counted by the completion
// percentage.
func (k RecordKind) RequiredSections() []string {
	return append([]string(nil), schemas[k].required...)
}

// FormPaths lists the editable field paths of the kind in display order.
func (k RecordKind) FormPaths() []string {
	return append([]string(nil), schemas[k].form...)
}

// Defaults returns the empty document for the kind: every form path set to
// an empty string.
func (k RecordKind) Defaults() Fields {
	f := make(Fields)
	for _, p := range schemas[k].form {
		_ = f.Set(p, "")
	}
	return f
}
