// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": { "hash_key": "security_hash", "version": "2.0.0" },
		"server": { "http_address": "0.0.0.0:8080", "request_timeout": "30s" },
		"adapter": { "http_address": "localhost:8080", "request_timeout": "10s" },
		"storage": { "db": { "dsn": "file:drafts.db" } },
		"autosave": {
			"debounce_delay": "3s",
			"confirm_delay": 2000000000,
			"save_timeout": "15s",
			"discard_on_close": true
		},
		"workers": { "refresh_interval": "1m" },
		"log": { "file_path": "client.log" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:drafts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Second, cfg.Autosave.DebounceDelay)
	assert.Equal(t, 2*time.Second, cfg.Autosave.ConfirmDelay)
	assert.Equal(t, 15*time.Second, cfg.Autosave.SaveTimeout)
	assert.True(t, cfg.Autosave.DiscardOnClose)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "client.log", cfg.Log.FilePath)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":`), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"autosave":{"debounce_delay":"later"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}
