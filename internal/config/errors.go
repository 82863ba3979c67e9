package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote transport settings
	// (for example, missing HTTP address or a zero request timeout).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidSyncConfigs indicates invalid synchronization settings
	// (for example, missing log path or an unknown conflict policy).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty ledger or session path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWatchConfigs indicates invalid continuous-mode settings
	// (for example, watch enabled with a zero debounce or interval).
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
)
