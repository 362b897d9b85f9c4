// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the view of [StructuredConfig] used by the form client.
type ClientConfig struct {
	// App carries the request signing key.
	App App
	// Adapter contains the records API address and timeout.
	Adapter Adapter
	// Autosave contains the synchronizer timings.
	Autosave Autosave
	// Workers contains background job settings.
	Workers Workers
	// Log contains the client log file location.
	Log Log
}

// GetClientConfig builds and validates the client configuration.
//
// It loads the base config via [GetStructuredConfig], keeps only the groups
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:      cfg.App,
		Adapter:  cfg.Adapter,
		Autosave: cfg.Autosave,
		Workers:  cfg.Workers,
		Log:      cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
