// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logfile"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/internal/store"
	"github.com/MKhiriev/go-keeplog/models"
)

type syncService struct {
	remote  adapter.RemoteAdapter
	planner Planner

	logPath   string
	label     string
	policy    models.ConflictPolicy
	backupDir string
	dryRun    bool

	logger *logger.Logger
}

// NewSyncService wires a sync service over the given remote adapter. The
// planner is injected so tests can substitute a canned plan.
func NewSyncService(remote adapter.RemoteAdapter, planner Planner, cfg *config.StructuredConfig, log *logger.Logger) SyncService {
	return &syncService{
		remote:    remote,
		planner:   planner,
		logPath:   cfg.Sync.LogPath,
		label:     cfg.Sync.Label,
		policy:    models.ConflictPolicy(cfg.Sync.Policy),
		backupDir: cfg.Storage.BackupDir,
		dryRun:    cfg.Run.DryRun,
		logger:    log.GetChildLogger("service", "sync"),
	}
}

// FullSync implements SyncService.
func (s *syncService) FullSync(ctx context.Context, checksums map[string]string) (models.SyncPlan, error) {
	local, err := logfile.ParseFile(s.logPath)
	if err != nil {
		return models.SyncPlan{}, fmt.Errorf("parse local log file: %w", err)
	}

	fetched, err := s.remote.FindByLabel(ctx, s.label)
	if err != nil {
		return models.SyncPlan{}, fmt.Errorf("fetch labeled remote entries: %w", err)
	}

	remote := make(map[string]adapter.RemoteEntry, len(fetched))
	for key, entry := range fetched {
		// A labeled note whose title is not a log header was never produced
		// by this tool; leave it alone rather than drag it into the file.
		if !logfile.IsHeader(key) {
			s.logger.Debug().Str("title", key).Msg("skipping labeled note, title is not a log header")
			continue
		}
		remote[key] = entry
	}

	plan, err := s.planner.BuildSyncPlan(ctx, local, remote, checksums, s.policy)
	if err != nil {
		return models.SyncPlan{}, fmt.Errorf("build sync plan: %w", err)
	}

	s.logger.Info().
		Int("create_remote", len(plan.CreateRemote)).
		Int("update_remote", len(plan.UpdateRemote)).
		Int("write_local", len(plan.WriteLocal)).
		Int("conflicts", len(plan.Conflicts)).
		Bool("dry_run", s.dryRun).
		Msg("sync plan built")

	for _, c := range plan.Conflicts {
		s.logger.Warn().
			Str("key", c.Key).
			Str("resolution", c.Resolution.String()).
			Msg("conflicting entry")
	}

	if s.dryRun || plan.Empty() {
		return plan, nil
	}

	if err = s.executePlan(ctx, local, remote, plan); err != nil {
		return models.SyncPlan{}, err
	}

	return plan, nil
}

// executePlan applies the plan in the only safe order: every remote mutation
// is staged and committed first; the local file is backed up and rewritten
// only after the commit succeeded. A failed commit therefore leaves the
// local file and the ledger exactly as they were.
func (s *syncService) executePlan(
	ctx context.Context,
	local *logfile.Log,
	remote map[string]adapter.RemoteEntry,
	plan models.SyncPlan,
) error {
	for _, e := range plan.CreateRemote {
		created := s.remote.CreateEntry(e.Key, e.Text)
		created.AttachLabel(s.label)
	}

	for _, e := range plan.UpdateRemote {
		entry, ok := remote[e.Key]
		if !ok {
			return fmt.Errorf("plan updates unknown remote entry %q", e.Key)
		}
		entry.SetText(e.Text)
	}

	if err := s.remote.Commit(ctx); err != nil {
		return fmt.Errorf("commit remote mutations: %w", err)
	}

	if len(plan.WriteLocal) == 0 {
		return nil
	}

	backupPath, err := store.BackupFile(s.logPath, s.backupDir)
	if err != nil {
		return fmt.Errorf("back up log file: %w", err)
	}
	if backupPath != "" {
		s.logger.Info().Str("backup", backupPath).Msg("log file backed up before rewrite")
	}

	// Pulled keys that are new to the file end up appended in plan order;
	// existing keys are updated in place, preserving file order.
	for _, e := range plan.WriteLocal {
		local.Set(e.Key, e.Text)
	}

	if err = logfile.WriteFile(s.logPath, local); err != nil {
		return fmt.Errorf("rewrite local log file: %w", err)
	}

	s.logger.Info().Int("entries", local.Len()).Msg("local log file rewritten")
	return nil
}
