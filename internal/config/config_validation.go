// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks the settings shared by every binary. Role-specific
// requirements are checked by [StructuredConfig.ValidateServer] and
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	a := cfg.Autosave
	if a.DebounceDelay < 0 || a.ConfirmDelay < 0 || a.SaveTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAutosaveConfigs)
	}
	if a.SaveTimeout != 0 && a.SaveTimeout < time.Second {
		return fmt.Errorf("%w: save timeout %s is shorter than 1s", ErrInvalidAutosaveConfigs, a.SaveTimeout)
	}

	return nil
}

// ValidateServer checks the settings the records server cannot start
// without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
