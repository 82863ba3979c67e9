// Package workers provides the background worker that keeps the
// synchronizer running in continuous mode.
//
// It defines the Worker interface and a file-watching implementation that
// triggers a reconciliation pass after local changes, with a ticker fallback
// for changes the watcher misses and a fixed backoff for transient remote
// failures.
package workers

import "context"

// Worker is the interface implemented by any long-running background worker.
// Run blocks until the context is cancelled or the worker hits a fatal
// error.
type Worker interface {
	Run(ctx context.Context) error
}

// Pass runs one reconciliation pass. The watch worker never interprets the
// pass beyond classifying its error as transient or fatal.
type Pass func(ctx context.Context) error
