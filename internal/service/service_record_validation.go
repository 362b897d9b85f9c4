// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/validators"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// RecordValidationService checks the shape of incoming records before they
// reach the wrapped RecordService.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}

func (v *RecordValidationService) Get(ctx context.Context, id string) (models.Record, error) {
	if err := v.validator.Validate(ctx, models.Record{ID: id}, validators.FieldID); err != nil {
		return models.Record{}, validationError(err)
	}
	return v.inner.Get(ctx, id)
}

func (v *RecordValidationService) Create(ctx context.Context, r models.Record) (models.Record, error) {
	// a new record carries only kind and fields; id, version and revision
	// are assigned by the server
	if err := v.validator.Validate(ctx, r, validators.FieldCreate, validators.FieldKind, validators.FieldFields); err != nil {
		return models.Record{}, validationError(err)
	}
	return v.inner.Create(ctx, r)
}

func (v *RecordValidationService) Update(ctx context.Context, r models.Record) (models.Record, error) {
	fields := []string{validators.FieldID, validators.FieldVersion, validators.FieldFields}
	if r.Kind != "" {
		fields = append(fields, validators.FieldKind)
	}
	if err := v.validator.Validate(ctx, r, fields...); err != nil {
		return models.Record{}, validationError(err)
	}
	return v.inner.Update(ctx, r)
}

func (v *RecordValidationService) List(ctx context.Context, kind models.RecordKind) (models.RecordList, error) {
	if kind != "" {
		if err := v.validator.Validate(ctx, kind); err != nil {
			return models.RecordList{}, validationError(err)
		}
	}
	return v.inner.List(ctx, kind)
}

func validationError(err error) error {
	if errors.Is(err, validators.ErrInvalidKind) {
		return fmt.Errorf("%w: %w", ErrUnknownRecordKind, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
