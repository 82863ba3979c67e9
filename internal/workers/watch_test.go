// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watchCfg() config.Watch {
	return config.Watch{
		Enabled:  true,
		Debounce: 50 * time.Millisecond,
		Interval: time.Hour, // keep the ticker out of short tests
		Backoff:  20 * time.Millisecond,
	}
}

func TestWatchWorker_RunsInitialPass(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "keep.log")
	require.NoError(t, os.WriteFile(logPath, []byte(""), 0o644))

	var passes atomic.Int32
	w := NewWatchWorker(logPath, watchCfg(), func(ctx context.Context) error {
		passes.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return passes.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchWorker_FileChangeTriggersPass(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "keep.log")
	require.NoError(t, os.WriteFile(logPath, []byte(""), 0o644))

	var passes atomic.Int32
	w := NewWatchWorker(logPath, watchCfg(), func(ctx context.Context) error {
		passes.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// wait for the initial pass, then touch the file
	require.Eventually(t, func() bool { return passes.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(logPath, []byte("01/01/20 note\n--\nx\n\n"), 0o644))

	require.Eventually(t, func() bool { return passes.Load() >= 2 },
		2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

// TestWatchWorker_IgnoresForeignFiles verifies that changes to sibling files
// in the watched directory never trigger a pass.
func TestWatchWorker_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "keep.log")
	require.NoError(t, os.WriteFile(logPath, []byte(""), 0o644))

	var passes atomic.Int32
	w := NewWatchWorker(logPath, watchCfg(), func(ctx context.Context) error {
		passes.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return passes.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), passes.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatchWorker_RetriesTransientFailures(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "keep.log")
	require.NoError(t, os.WriteFile(logPath, []byte(""), 0o644))

	var passes atomic.Int32
	w := NewWatchWorker(logPath, watchCfg(), func(ctx context.Context) error {
		if passes.Add(1) == 1 {
			return fmt.Errorf("%w: 503", adapter.ErrUnavailable)
		}
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// the failed initial pass must be retried after the backoff
	require.Eventually(t, func() bool { return passes.Load() >= 2 },
		2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatchWorker_FatalErrorStopsWorker(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "keep.log")
	require.NoError(t, os.WriteFile(logPath, []byte(""), 0o644))

	w := NewWatchWorker(logPath, watchCfg(), func(ctx context.Context) error {
		return assert.AnError
	}, logger.Nop())

	err := w.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
