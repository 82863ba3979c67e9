package models

// ConflictPolicy defines how the reconciliation engine resolves entries that
// have diverged on both sides since the last agreed baseline.
type ConflictPolicy string

const (
	// PolicyPreferLocal pushes the local text to the remote side on conflict.
	PolicyPreferLocal ConflictPolicy = "prefer-local"

	// PolicyPreferRemote pulls the remote text into the local file on conflict.
	PolicyPreferRemote ConflictPolicy = "prefer-remote"

	// PolicyDoNothing mutates neither side and leaves the ledger baseline
	// untouched, so the same conflict is reported again on every pass until
	// it is resolved by hand.
	PolicyDoNothing ConflictPolicy = "do-nothing"
)

// IsValid reports whether p is one of the supported policies.
func (p ConflictPolicy) IsValid() bool {
	switch p {
	case PolicyPreferLocal, PolicyPreferRemote, PolicyDoNothing:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (p ConflictPolicy) String() string {
	return string(p)
}

// Conflict describes one key whose text diverged on both sides of the sync.
type Conflict struct {
	// Key is the entry key the conflict was detected on.
	Key string

	// LocalText is the local side of the divergence.
	LocalText string

	// RemoteText is the remote side of the divergence.
	RemoteText string

	// Resolution is the policy that was applied to this conflict.
	Resolution ConflictPolicy
}
