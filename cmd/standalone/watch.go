package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-standalone/internal/config"
	"github.com/alnah/go-standalone/internal/fileutil"
)

// pollInterval is how often pending events are checked for settlement.
const pollInterval = 100 * time.Millisecond

// runWatch bundles once, then re-bundles whenever the dist contents
// settle after a burst of change events. Bundle failures are reported
// but do not stop the watcher; cancellation stops it cleanly.
func runWatch(ctx context.Context, cfg *config.Config, dests []string, env *Environment) error {
	if err := bundleOnce(ctx, cfg, dests, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(cfg.Dist); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Dist, err)
	}
	assetsDir := filepath.Join(cfg.Dist, "assets")
	if fileutil.DirExists(assetsDir) {
		if err := fsw.Add(assetsDir); err != nil {
			return fmt.Errorf("watching %s: %w", assetsDir, err)
		}
	}

	if !cfg.Console.Quiet {
		fmt.Fprintf(env.Stderr, "Watching %s for changes\n", cfg.Dist)
	}

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	pending := make(map[string]time.Time)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if isBundleInput(event) {
				pending[event.Name] = time.Now()
			}

		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", werr)

		case now := <-ticker.C:
			if settled(pending, now, debounce) {
				clear(pending)
				if err := bundleOnce(ctx, cfg, dests, env); err != nil {
					fmt.Fprintln(env.Stderr, err)
				}
			}
		}
	}
}

// isBundleInput filters to content-changing events on files the bundle
// actually reads. Chmod and similar are ignored.
func isBundleInput(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(ev.Name)) {
	case ".html", ".css", ".js":
		return true
	}
	return false
}

// settled reports whether there are pending events and all of them are
// older than the debounce window.
func settled(pending map[string]time.Time, now time.Time, debounce time.Duration) bool {
	if len(pending) == 0 {
		return false
	}
	for _, at := range pending {
		if now.Sub(at) < debounce {
			return false
		}
	}
	return true
}
