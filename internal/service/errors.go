package service

import "errors"

var (
	// ErrAuthenticationFailed is returned when neither the saved session nor
	// the configured credentials are accepted by the remote service.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
