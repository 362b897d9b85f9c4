// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/synchronizer"
)

// mapAdapterError translates the adapter's transport error into the error
// classes the synchronizer understands. The original error stays in the
// chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", synchronizer.ErrConflict, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", synchronizer.ErrValidation, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", synchronizer.ErrNotFound, err)
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", synchronizer.ErrNetwork, err)
	}

	return err
}
