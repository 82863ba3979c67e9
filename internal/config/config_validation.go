// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-keeplog/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise. Credentials are deliberately not required here:
// a saved token may carry the whole session, and their absence only matters
// once a password login becomes necessary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.LogPath == "" {
		return ErrInvalidSyncConfigs
	}
	if !models.ConflictPolicy(cfg.Sync.Policy).IsValid() {
		return ErrInvalidSyncConfigs
	}
	if cfg.Sync.Label == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Remote.HTTPAddress == "" || cfg.Remote.RequestTimeout == 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.LedgerPath == "" || cfg.Storage.SessionPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Watch.Enabled && (cfg.Watch.Debounce == 0 || cfg.Watch.Interval == 0) {
		return ErrInvalidWatchConfigs
	}

	return nil
}
