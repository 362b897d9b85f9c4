// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server records server address used by the client
//	-d database DSN
//	-c/-config json file path with configs
//	-hash-key request signing key
//	-app-version application version
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-debounce autosave debounce delay (e.g., "3s")
//	-confirm-delay saved status display time (e.g., "2s")
//	-save-timeout autosave request timeout (e.g., "15s")
//	-discard-on-close drop unsaved edits when an editor closes
//	-refresh-interval record list refresh interval (e.g., "1m")
//	-log-file client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var hashKey string
	var appVersion string
	var requestTimeout time.Duration
	var debounceDelay, confirmDelay, saveTimeout time.Duration
	var discardOnClose bool
	var refreshInterval time.Duration
	var logFile string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "server", "", "Records server address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Request signing key")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&debounceDelay, "debounce", 0, "Autosave debounce delay (e.g., 3s)")
	fs.DurationVar(&confirmDelay, "confirm-delay", 0, "Saved status display time (e.g., 2s)")
	fs.DurationVar(&saveTimeout, "save-timeout", 0, "Autosave request timeout (e.g., 15s)")
	fs.BoolVar(&discardOnClose, "discard-on-close", false, "Drop unsaved edits when an editor closes")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Record list refresh interval (e.g., 1m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			Version: appVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Autosave: Autosave{
			DebounceDelay:  debounceDelay,
			ConfirmDelay:   confirmDelay,
			SaveTimeout:    saveTimeout,
			DiscardOnClose: discardOnClose,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		Log:          Log{FilePath: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "draft-keeper"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
