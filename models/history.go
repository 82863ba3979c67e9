package models

import "time"

// Pass statuses recorded in the local sync history.
const (
	PassStatusOK    = "ok"
	PassStatusError = "error"
)

// PassRecord is one row of the local sync history: a summary of a single
// reconciliation pass. History is observability only; nothing in the sync
// algorithm reads it back.
type PassRecord struct {
	// ID is the autoincremented row identifier.
	ID int64

	// StartedAt and FinishedAt bound the pass, in UTC.
	StartedAt  time.Time
	FinishedAt time.Time

	// CreatedRemote, UpdatedRemote and WrittenLocal are mutation counts
	// taken from the executed plan.
	CreatedRemote int64
	UpdatedRemote int64
	WrittenLocal  int64

	// Conflicts is the number of keys reported as conflicting, regardless
	// of how the policy resolved them.
	Conflicts int64

	// Policy is the conflict policy the pass ran with.
	Policy string

	// Status is [PassStatusOK] or [PassStatusError].
	Status string

	// Error holds the failure message for error passes, empty otherwise.
	Error string
}
