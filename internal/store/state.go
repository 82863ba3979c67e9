// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the durable local state of the synchronizer: the
// checksum ledger and session snapshot, timestamped backups of the log file,
// and the SQLite-backed sync history.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/models"
)

// StateStore persists the [models.State] record across passes. The checksum
// ledger and the token/session snapshot live in two separate JSON files so
// that wiping credentials does not touch the conflict-detection baseline.
type StateStore struct {
	ledgerPath  string
	sessionPath string

	logger *logger.Logger
}

type ledgerRecord struct {
	Checksums map[string]string `json:"checksums"`
}

type sessionRecord struct {
	Token   string `json:"token,omitempty"`
	Session string `json:"session,omitempty"`
}

// NewStateStore constructs a StateStore over the configured file paths.
func NewStateStore(cfg config.Storage, logger *logger.Logger) *StateStore {
	return &StateStore{
		ledgerPath:  cfg.LedgerPath,
		sessionPath: cfg.SessionPath,
		logger:      logger,
	}
}

// Load reads both files into one state record. A missing file contributes
// its zero value (fresh install); a present but undecodable file is fatal
// with [ErrCorruptLedger] or [ErrCorruptSession] so that history is never
// silently discarded.
func (s *StateStore) Load() (models.State, error) {
	st := models.State{Checksums: make(map[string]string)}

	var lr ledgerRecord
	ok, err := readJSONFile(s.ledgerPath, &lr)
	if err != nil {
		return models.State{}, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}
	if ok && lr.Checksums != nil {
		st.Checksums = lr.Checksums
	}

	var sr sessionRecord
	ok, err = readJSONFile(s.sessionPath, &sr)
	if err != nil {
		return models.State{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if ok {
		st.Token = sr.Token
		st.Session = sr.Session
	}

	s.logger.Debug().
		Int("checksums", len(st.Checksums)).
		Bool("token", st.Token != "").
		Msg("loaded sync state")

	return st, nil
}

// Save persists the state record. Each file is written atomically
// (write-temp-then-rename), so a crash mid-write leaves the previous valid
// file readable.
func (s *StateStore) Save(st models.State) error {
	if err := writeJSONFile(s.ledgerPath, ledgerRecord{Checksums: st.Checksums}); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	if err := writeJSONFile(s.sessionPath, sessionRecord{Token: st.Token, Session: st.Session}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// readJSONFile decodes path into v. It returns (false, nil) when the file
// does not exist and (true, err) when it exists but cannot be read or
// decoded.
func readJSONFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return true, err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return true, err
	}
	return true, nil
}

func writeJSONFile(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}

	return nil
}
