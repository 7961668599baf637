// Copyright (c) 2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config handles tildecon configuration loading and persistence.
package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// Config File Watcher
// =============================================================================

// Watcher monitors the config file and delivers validated snapshots on
// its Updates channel after each change settles. Edits are debounced so
// editors that write in bursts trigger a single reload.
//
// The parent directory is watched rather than the file itself because
// atomic saves replace the file via rename, which would drop a direct
// watch. When fsnotify is unavailable the watcher degrades to polling.
type Watcher struct {
	path     string
	debounce time.Duration
	warnf    func(format string, args ...any)

	// fw is nil when the watcher runs in polling mode.
	fw      *fsnotify.Watcher
	updates chan *Config

	mu        sync.Mutex
	pending   bool
	pendingAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for the config file at path. Changes are
// debounced for the given duration before a reload is attempted. Reload
// and watch failures are reported through warnf; they never stop the
// watcher.
func NewWatcher(path string, debounce time.Duration, warnf func(format string, args ...any)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if warnf == nil {
		warnf = func(string, ...any) {}
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		warnf:    warnf,
		updates:  make(chan *Config, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.warnf("config watcher: fsnotify unavailable, falling back to polling: %v", err)
	} else {
		w.fw = fw
	}
	return w, nil
}

// Watch starts the background goroutines. It returns immediately.
func (w *Watcher) Watch() error {
	if w.fw != nil {
		if err := w.fw.Add(filepath.Dir(w.path)); err != nil {
			w.warnf("config watcher: cannot watch %s, falling back to polling: %v", filepath.Dir(w.path), err)
			w.fw.Close()
			w.fw = nil
		}
	}

	if w.fw == nil {
		w.wg.Add(1)
		go w.pollLoop()
		return nil
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()
	return nil
}

// Updates returns the channel of reloaded configurations. The channel
// is closed by Close.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops the watcher and closes the Updates channel.
func (w *Watcher) Close() error {
	w.cancel()
	var err error
	if w.fw != nil {
		err = w.fw.Close()
	}
	w.wg.Wait()
	close(w.updates)
	return err
}

// processEvents marks the file pending whenever the filesystem reports
// a change to it.
func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = true
				w.pendingAt = time.Now()
				w.mu.Unlock()
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.warnf("config watcher error: %v", err)
		}
	}
}

// processPending reloads the file once the debounce window has elapsed
// with no further changes.
func (w *Watcher) processPending() {
	defer w.wg.Done()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			due := w.pending && time.Since(w.pendingAt) >= w.debounce
			if due {
				w.pending = false
			}
			w.mu.Unlock()
			if due {
				w.reload()
			}
		}
	}
}

// pollLoop is the fallback when no filesystem watcher is available. It
// compares modification times on an interval.
func (w *Watcher) pollLoop() {
	defer w.wg.Done()

	interval := w.debounce
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastMod time.Time
	if fi, err := os.Stat(w.path); err == nil {
		lastMod = fi.ModTime()
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			fi, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if fi.ModTime().After(lastMod) {
				lastMod = fi.ModTime()
				w.reload()
			}
		}
	}
}

// reload parses the file and publishes the snapshot, replacing any
// undelivered previous snapshot so consumers always see the newest.
func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		w.warnf("config reload failed: %v", err)
		return
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
