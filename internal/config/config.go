// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-keeplog application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the credentials used when the saved token cannot be
	// resumed and a password login is required.
	Auth Auth `envPrefix:"AUTH_"`

	// Remote holds network address and timeout settings for the note
	// service the synchronizer talks to.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds the local log file path, the remote label, and the
	// conflict policy applied during a pass.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the on-disk locations of the checksum ledger, the
	// session file, the pass history database, and the backup directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Watch holds the settings for continuous mode, where passes are
	// triggered by file change events instead of a single invocation.
	Watch Watch `envPrefix:"WATCH_"`

	// Run holds per-invocation switches that change what the binary does
	// without changing how a pass behaves.
	Run Run `envPrefix:"RUN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the username and password used for the login fallback.
// Both may be empty when a saved token is expected to carry the session.
type Auth struct {
	// User is the account name sent on password login.
	// Env: AUTH_USER
	User string `env:"USER"`

	// Pass is the account password sent on password login. Must be kept
	// confidential; prefer the environment variable over the flag.
	// Env: AUTH_PASS
	Pass string `env:"PASS"`
}

// Remote holds network and timeout settings for the outbound transport layer.
type Remote struct {
	// HTTPAddress is the base address of the note service, in "host:port"
	// format (e.g. "localhost:8080").
	// Env: REMOTE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the settings that define what a pass synchronizes and how it
// resolves disagreements.
type Sync struct {
	// LogPath is the path to the flat local log file.
	// Env: SYNC_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Label is the remote label that marks which notes belong to the
	// synchronized collection.
	// Env: SYNC_LABEL
	Label string `env:"LABEL"`

	// Policy names the conflict policy: "prefer-local", "prefer-remote",
	// or "do-nothing".
	// Env: SYNC_POLICY
	Policy string `env:"POLICY"`
}

// Storage holds the on-disk locations of everything the synchronizer
// persists between passes.
type Storage struct {
	// LedgerPath is the path of the JSON checksum ledger.
	// Env: STORAGE_LEDGER_PATH
	LedgerPath string `env:"LEDGER_PATH"`

	// SessionPath is the path of the JSON file holding the saved token
	// and session blob.
	// Env: STORAGE_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`

	// HistoryDSN is the SQLite DSN of the pass history database.
	// Env: STORAGE_HISTORY_DSN
	HistoryDSN string `env:"HISTORY_DSN"`

	// BackupDir is the directory that receives a copy of the log file
	// before every local rewrite.
	// Env: STORAGE_BACKUP_DIR
	BackupDir string `env:"BACKUP_DIR"`
}

// Watch holds the timing knobs for continuous mode.
type Watch struct {
	// Enabled turns continuous mode on. When false the binary runs a
	// single pass and exits.
	// Env: WATCH_ENABLED
	Enabled bool `env:"ENABLED"`

	// Debounce is how long to wait after the last file change event
	// before starting a pass, so a burst of saves triggers one pass.
	// Env: WATCH_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// Interval is the fallback period between passes when no file change
	// events arrive.
	// Env: WATCH_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// Backoff is how long to wait before retrying after a pass fails on a
	// transient remote error.
	// Env: WATCH_BACKOFF
	Backoff time.Duration `env:"BACKOFF"`
}

// Run holds per-invocation switches.
type Run struct {
	// DryRun makes the pass print its plan without committing anything,
	// locally or remotely.
	// Env: RUN_DRY_RUN
	DryRun bool `env:"DRY_RUN"`

	// ShowHistory, when positive, prints the last N pass records and
	// exits without synchronizing.
	// Env: RUN_SHOW_HISTORY
	ShowHistory int `env:"SHOW_HISTORY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
