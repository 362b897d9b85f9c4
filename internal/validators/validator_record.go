// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// Field name constants used to specify which parts of a record should be
// validated (field-level scoping).
const (
	// FieldID requires a non-empty record id.
	FieldID = "id"

	// FieldKind requires one of the known record kinds.
	FieldKind = "kind"

	// FieldVersion requires a non-negative version.
	FieldVersion = "version"

	// FieldFields checks the shape of the form body: keys must be non-empty
	// and free of the path separator, nesting is bounded and leaves must be
	// JSON values.
	FieldFields = "fields"

	// FieldCreate requires a record that was never stored: empty id and
	// zero version.
	FieldCreate = "create"
)

// MaxFieldsDepth bounds the nesting of record fields.
const MaxFieldsDepth = 8

// RecordValidator implements [Validator] for [models.Record].
type RecordValidator struct{}

func NewRecordValidator() *RecordValidator {
	return &RecordValidator{}
}

// Validate implements [Validator]. Without explicit fields a record is
// checked for kind, version and fields.
func (v *RecordValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value := value.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	case models.RecordKind:
		if !value.Valid() {
			return ErrInvalidKind
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldVersion, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(r.ID) == "" {
				return ErrInvalidRecordID
			}
		case FieldKind:
			if !r.Kind.Valid() {
				return ErrInvalidKind
			}
		case FieldVersion:
			if r.Version < 0 {
				return ErrInvalidVersion
			}
		case FieldFields:
			if err := validateFields(r.Fields, "", 1); err != nil {
				return err
			}
		case FieldCreate:
			if r.ID != "" {
				return ErrRecordIDForbidden
			}
			if r.Version != 0 {
				return ErrCreateVersionIsSet
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFields(m map[string]any, prefix string, depth int) error {
	if depth > MaxFieldsDepth {
		return fmt.Errorf("%w: %s", ErrFieldsTooDeep, prefix)
	}

	for k, val := range m {
		if k == "" || strings.Contains(k, models.PathSeparator) {
			return fmt.Errorf("%w: %q", ErrInvalidFieldKey, prefix+k)
		}
		if err := validateValue(val, prefix+k, depth); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(val any, path string, depth int) error {
	switch val := val.(type) {
	case nil, string, bool, float64, float32, int, int32, int64, uint, uint32, uint64:
		return nil
	case models.Fields:
		return validateFields(val, path+models.PathSeparator, depth+1)
	case map[string]any:
		return validateFields(val, path+models.PathSeparator, depth+1)
	case []string:
		return nil
	case []any:
		if depth+1 > MaxFieldsDepth {
			return fmt.Errorf("%w: %s", ErrFieldsTooDeep, path)
		}
		for _, item := range val {
			if err := validateValue(item, path, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s is %T", ErrUnsupportedValue, path, val)
	}
}
