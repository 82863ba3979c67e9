package service

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/logfile"
	"github.com/MKhiriev/go-keeplog/internal/utils"
	"github.com/MKhiriev/go-keeplog/models"
)

// syncPlanner is the concrete implementation of Planner.
// It performs a purely in-memory three-way comparison of the local file,
// the remote collection and the checksum ledger; no storage layer or logger
// is required because the operation is stateless and produces no side
// effects.
type syncPlanner struct{}

// NewSyncPlanner constructs a Planner ready for use.
// Because BuildSyncPlan is a stateless, in-memory operation,
// no dependencies (storage, config, logger) are needed.
func NewSyncPlanner() Planner {
	return &syncPlanner{}
}

// BuildSyncPlan implements Planner.
//
// It makes two linear passes to classify every key into exactly one action
// category:
//
//   - Pass 1 (over the local file, in file order): handles keys present
//     locally, whether or not they also exist remotely.
//   - Pass 2 (over the remote collection, in sorted key order): catches keys
//     that exist only remotely and were therefore invisible in pass 1.
//
// The ledger fingerprint is the tiebreaker for one-sided change detection:
// a side whose fingerprint still matches the baseline has not moved, so the
// other side's text wins without being a conflict. With no baseline, or with
// both sides moved, the key is a conflict and policy decides.
//
// ctx cancellation is checked at the start of each iteration so that
// callers can abort early when operating on large files.
func (p *syncPlanner) BuildSyncPlan(
	ctx context.Context,
	local *logfile.Log,
	remote map[string]adapter.RemoteEntry,
	checksums map[string]string,
	policy models.ConflictPolicy,
) (models.SyncPlan, error) {
	plan := models.SyncPlan{
		Checksums: make(map[string]string, len(checksums)),
	}
	// Start from a copy of the ledger so baselines of keys this pass never
	// touches survive verbatim.
	for k, v := range checksums {
		plan.Checksums[k] = v
	}

	// ── Pass 1: iterate over local entries in file order ────────────────────
	for _, key := range local.Keys() {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		localText, _ := local.Get(key)
		localSum := utils.Fingerprint(localText)

		remoteEntry, existsRemotely := remote[key]
		if !existsRemotely {
			// Local-only entry → create remotely.
			plan.CreateRemote = append(plan.CreateRemote, models.Entry{Key: key, Text: localText})
			plan.Checksums[key] = localSum
			continue
		}

		remoteText := remoteEntry.Text()
		remoteSum := utils.Fingerprint(remoteText)

		if localSum == remoteSum {
			// Both sides agree → no action; refresh the baseline so a stale
			// or missing ledger entry heals itself.
			plan.Checksums[key] = localSum
			continue
		}

		baseline, hasBaseline := checksums[key]
		localChanged := baseline != localSum
		remoteChanged := baseline != remoteSum

		switch {
		case !hasBaseline:
			// Texts differ and no baseline is known: there is no way to tell
			// which side moved → conflict.
			p.resolve(&plan, key, localText, remoteText, policy)

		case localChanged && !remoteChanged:
			// Only the local side moved → push.
			plan.UpdateRemote = append(plan.UpdateRemote, models.Entry{Key: key, Text: localText})
			plan.Checksums[key] = localSum

		case !localChanged && remoteChanged:
			// Only the remote side moved → pull.
			plan.WriteLocal = append(plan.WriteLocal, models.Entry{Key: key, Text: remoteText})
			plan.Checksums[key] = remoteSum

		default:
			// Both sides moved since the baseline → conflict.
			p.resolve(&plan, key, localText, remoteText, policy)
		}
	}

	// ── Pass 2: find remote-only entries (absent from the local file) ───────
	remoteOnly := make([]string, 0, len(remote))
	for key := range remote {
		if !local.Has(key) {
			remoteOnly = append(remoteOnly, key)
		}
	}
	// Map iteration order is random; sort so repeated passes append pulled
	// entries to the local file in a stable order.
	sort.Strings(remoteOnly)

	for _, key := range remoteOnly {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		text := remote[key].Text()
		plan.WriteLocal = append(plan.WriteLocal, models.Entry{Key: key, Text: text})
		plan.Checksums[key] = utils.Fingerprint(text)
	}

	return plan, nil
}

// resolve records the conflict and applies the policy to the plan. Under
// PolicyDoNothing neither side is mutated and the ledger keeps its previous
// baseline, so the same conflict resurfaces on every pass until resolved by
// hand.
func (p *syncPlanner) resolve(plan *models.SyncPlan, key, localText, remoteText string, policy models.ConflictPolicy) {
	switch policy {
	case models.PolicyPreferLocal:
		plan.UpdateRemote = append(plan.UpdateRemote, models.Entry{Key: key, Text: localText})
		plan.Checksums[key] = utils.Fingerprint(localText)

	case models.PolicyPreferRemote:
		plan.WriteLocal = append(plan.WriteLocal, models.Entry{Key: key, Text: remoteText})
		plan.Checksums[key] = utils.Fingerprint(remoteText)

	case models.PolicyDoNothing:
		// no mutation, ledger untouched
	}

	plan.Conflicts = append(plan.Conflicts, models.Conflict{
		Key:        key,
		LocalText:  localText,
		RemoteText: remoteText,
		Resolution: policy,
	})
}
