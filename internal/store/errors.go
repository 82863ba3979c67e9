package store

import "errors"

// Sentinel errors returned by the state store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCorruptLedger is returned when the ledger file exists but cannot
	// be decoded. It is never auto-discarded: losing the ledger silently
	// would erase the conflict-detection history.
	ErrCorruptLedger = errors.New("ledger file is corrupt")

	// ErrCorruptSession is returned when the session file exists but cannot
	// be decoded.
	ErrCorruptSession = errors.New("session file is corrupt")
)
