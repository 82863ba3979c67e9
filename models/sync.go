// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncPlan is the full outcome of one reconciliation pass, computed by the
// planner before any side effect is applied. Executing the plan must follow
// the ordering invariant: all remote mutations are committed first; only
// after a successful commit is the local file backed up and rewritten, and
// only after that is the ledger persisted.
type SyncPlan struct {
	// CreateRemote holds local-only entries to be created on the remote side
	// (with the sync label attached), in local file order.
	CreateRemote []Entry

	// UpdateRemote holds entries whose local text overwrites the remote text,
	// in local file order.
	UpdateRemote []Entry

	// WriteLocal holds entries whose remote text must land in the local file:
	// pulled updates for existing keys and remote-only entries to append.
	// A non-empty WriteLocal triggers a backup and a local rewrite.
	WriteLocal []Entry

	// Conflicts reports every key that diverged on both sides, with the
	// resolution that was applied.
	Conflicts []Conflict

	// Checksums is the complete ledger as it must be persisted after the
	// plan has been executed. Keys resolved with [PolicyDoNothing] keep
	// their previous (stale) fingerprint on purpose.
	Checksums map[string]string
}

// Empty reports whether the plan mutates neither side. Conflicts resolved
// with [PolicyDoNothing] do not count as mutations.
func (p SyncPlan) Empty() bool {
	return len(p.CreateRemote) == 0 && len(p.UpdateRemote) == 0 && len(p.WriteLocal) == 0
}
