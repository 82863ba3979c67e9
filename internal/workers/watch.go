// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// watchWorker triggers a pass whenever the local log file changes, after a
// debounce window so a burst of editor saves runs one pass. A ticker covers
// remote-side changes the watcher can never see.
type watchWorker struct {
	logPath  string
	debounce time.Duration
	interval time.Duration
	backoff  time.Duration

	pass   Pass
	logger *logger.Logger
}

// NewWatchWorker builds a watch worker over the given log file. The pass is
// serialized: a new pass never starts while a previous one is running.
func NewWatchWorker(logPath string, cfg config.Watch, pass Pass, log *logger.Logger) Worker {
	return &watchWorker{
		logPath:  logPath,
		debounce: cfg.Debounce,
		interval: cfg.Interval,
		backoff:  cfg.Backoff,
		pass:     pass,
		logger:   log.GetChildLogger("worker", "watch"),
	}
}

// Run implements Worker. The parent directory is watched, not the file
// itself: the file is replaced by rename on every rewrite, which would
// silently detach a direct file watch.
func (w *watchWorker) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.logPath)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("watch directory %s: %w", dir, err)
	}

	w.logger.Info().
		Str("file", w.logPath).
		Dur("debounce", w.debounce).
		Dur("interval", w.interval).
		Msg("watching for changes")

	if err = w.runPass(ctx); err != nil {
		return err
	}

	debounce := time.NewTimer(w.debounce)
	stopTimer(debounce)
	defer debounce.Stop()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	base := filepath.Base(w.logPath)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("log file changed")
			stopTimer(debounce)
			debounce.Reset(w.debounce)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(werr).Msg("file watcher error")

		case <-debounce.C:
			if err = w.runPass(ctx); err != nil {
				return err
			}

		case <-ticker.C:
			if err = w.runPass(ctx); err != nil {
				return err
			}
		}
	}
}

// runPass runs the pass, retrying with a fixed backoff for as long as the
// failure is transient (remote unavailable or a failed commit). Any other
// error is fatal and stops the worker.
func (w *watchWorker) runPass(ctx context.Context) error {
	for {
		err := w.pass(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if !errors.Is(err, adapter.ErrUnavailable) && !errors.Is(err, adapter.ErrRemoteCommit) {
			return fmt.Errorf("sync pass: %w", err)
		}

		w.logger.Warn().Err(err).Dur("backoff", w.backoff).Msg("transient failure, retrying after backoff")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.backoff):
		}
	}
}

// stopTimer stops a timer and drains its channel so a following Reset starts
// a clean countdown.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
