package adapter

import "errors"

var (
	// ErrAuth is returned when the service rejects the presented token or
	// credentials (HTTP 401/403). A token-path ErrAuth is recoverable by a
	// full login; a credential-path ErrAuth is fatal for the pass.
	ErrAuth = errors.New("authentication rejected")

	// ErrRemoteCommit is returned when flushing staged mutations fails for
	// any reason. No partial application is assumed; retrying the whole
	// pass is safe.
	ErrRemoteCommit = errors.New("remote commit failed")

	// ErrUnavailable is returned on transport failures and 5xx responses.
	// The watch loop treats it as transient and backs off.
	ErrUnavailable = errors.New("remote service unavailable")

	// ErrBadRequest is returned on HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned on HTTP 404.
	ErrNotFound = errors.New("not found")
)
