// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote note service.
//
// The primary abstraction is [RemoteAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrAuth] for 401, [ErrUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-keeplog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteEntry is a handle to one note on the remote service. Mutations made
// through the handle (SetText, AttachLabel) are buffered by the owning
// adapter and reach the service only when [RemoteAdapter.Commit] succeeds.
type RemoteEntry interface {
	// Key returns the entry key (the note title).
	Key() string

	// Text returns the current note body as last fetched or locally staged.
	Text() string

	// SetText stages a replacement of the note body.
	SetText(text string)

	// AttachLabel stages attaching the named label to the note. Attaching a
	// label the note already carries is a no-op.
	AttachLabel(label string)
}

// RemoteAdapter defines transport-agnostic communication with the remote
// note service. Implementations are responsible for serialisation,
// authentication state, mutation buffering, and mapping transport-level
// errors to the sentinel values defined in this package.
type RemoteAdapter interface {
	// Login authenticates with full credentials. On success the adapter
	// holds a freshly minted bearer token and session snapshot, retrievable
	// via CurrentToken and DumpSession. Returns a wrapped [ErrAuth] when the
	// service rejects the credentials.
	Login(ctx context.Context, creds models.Credentials) error

	// Resume re-establishes a previous session from a stored token and
	// opaque session blob, avoiding a full login. Returns a wrapped
	// [ErrAuth] when the token or blob is no longer accepted; the caller is
	// expected to fall back to Login.
	Resume(ctx context.Context, creds models.Credentials, token, session string) error

	// FindByLabel fetches every note carrying the given label and returns
	// them keyed by note title. No key filtering is applied here; callers
	// decide which titles participate in the sync.
	FindByLabel(ctx context.Context, label string) (map[string]RemoteEntry, error)

	// CreateEntry stages creation of a new note with the given title and
	// body. The new note carries no label until AttachLabel is called on
	// the returned handle. Nothing is sent until Commit.
	CreateEntry(key, text string) RemoteEntry

	// Commit flushes all staged mutations (creations, text updates, label
	// attachments) to the service in one request. It either fully applies
	// or fails as a whole with a wrapped [ErrRemoteCommit]; with nothing
	// staged it is a no-op success. On success the staging buffers are
	// cleared.
	Commit(ctx context.Context) error

	// DumpSession returns the opaque session snapshot to be persisted for
	// a later Resume. The contents are never interpreted locally.
	DumpSession() string

	// CurrentToken returns the bearer token currently held by the adapter,
	// or an empty string if not authenticated.
	CurrentToken() string
}
