// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the reconciliation engine: the pure planner that
// classifies every entry into an action, the sync service that executes a
// plan against the remote adapter and the local file, and the auth service
// that establishes a session token-first with a credential fallback.
package service

import (
	"context"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/logfile"
	"github.com/MKhiriev/go-keeplog/models"
)

// Planner computes a sync plan from the two sides and the ledger without
// performing any side effects.
type Planner interface {
	// BuildSyncPlan classifies every key present locally or remotely into
	// exactly one action, using checksums as the last agreed baseline and
	// policy to resolve two-sided divergence. The returned plan carries the
	// complete ledger to persist after execution.
	BuildSyncPlan(
		ctx context.Context,
		local *logfile.Log,
		remote map[string]adapter.RemoteEntry,
		checksums map[string]string,
		policy models.ConflictPolicy,
	) (models.SyncPlan, error)
}

// SyncService runs one full reconciliation pass.
type SyncService interface {
	// FullSync parses the local file, fetches the labeled remote entries,
	// builds a plan and executes it: remote mutations are committed first,
	// then the local file is backed up and rewritten. The returned plan
	// carries the ledger the caller must persist. In dry-run mode the plan
	// is returned without anything being executed.
	FullSync(ctx context.Context, checksums map[string]string) (models.SyncPlan, error)
}

// AuthService establishes an authenticated session on the remote adapter.
type AuthService interface {
	// Authenticate tries to resume the saved session first and falls back to
	// a credential login. It returns the state updated with the token and
	// session snapshot to persist.
	Authenticate(ctx context.Context, state models.State) (models.State, error)
}
