// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// records server and the form client. It is populated by merging defaults,
// environment variables (optionally seeded from a .env file), command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the request signing key and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the server's persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the records
	// API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection settings for the records API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Autosave controls the debounce and confirmation timings of the
	// client-side synchronizer.
	Autosave Autosave `envPrefix:"AUTOSAVE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking (the
	// HashSHA256 header). Signing is disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the server storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: "postgres://..." or
	// "postgresql://..." opens PostgreSQL through pgx, anything else is
	// treated as a SQLite file path or "file:" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the records API.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's settings for talking to the records API.
type Adapter struct {
	// HTTPAddress is the base address of the records server, with or
	// without scheme ("localhost:8080", "https://drafts.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Autosave holds the timing of the debounced autosave.
type Autosave struct {
	// DebounceDelay is the quiet period after the last edit before the
	// draft is saved.
	// Env: AUTOSAVE_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// ConfirmDelay is how long the "saved" status stays visible before it
	// settles to "clean".
	// Env: AUTOSAVE_CONFIRM_DELAY
	ConfirmDelay time.Duration `env:"CONFIRM_DELAY"`

	// SaveTimeout bounds a timer-triggered save request.
	// Env: AUTOSAVE_SAVE_TIMEOUT
	SaveTimeout time.Duration `env:"SAVE_TIMEOUT"`

	// DiscardOnClose drops unsaved edits when an editor is closed instead
	// of flushing them.
	// Env: AUTOSAVE_DISCARD_ON_CLOSE
	DiscardOnClose bool `env:"DISCARD_ON_CLOSE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is how often the client refreshes the record list
	// from the server.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is where the client writes its log. The server always logs
	// to stdout.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Defaults applied before any other source.
const (
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultDebounceDelay   = 3 * time.Second
	DefaultConfirmDelay    = 2 * time.Second
	DefaultSaveTimeout     = 15 * time.Second
	DefaultRefreshInterval = time.Minute
	DefaultDSN             = "draft-keeper.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Autosave: Autosave{
			DebounceDelay: DefaultDebounceDelay,
			ConfirmDelay:  DefaultConfirmDelay,
			SaveTimeout:   DefaultSaveTimeout,
		},
		Workers: Workers{RefreshInterval: DefaultRefreshInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Later sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables (a ./.env file is loaded first when present)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(".env").
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
