// Package watcher watches note directories and reports changed markdown
// files, debounced, so callers can re-parse only the documents that moved.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long to wait after the last event before reporting.
// Editors often fire several events per save.
const debounce = 200 * time.Millisecond

// Watcher wraps fsnotify and aggregates markdown change events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	callback func(changed []string)
}

// New creates a watcher over the given directories. callback receives the
// sorted list of changed markdown file paths after each quiet period. New
// fails if any path cannot be watched.
func New(paths []string, callback func(changed []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", p, err)
		}
	}
	return &Watcher{fsw: fsw, callback: callback}, nil
}

// Run processes events until ctx is cancelled or the watcher is closed.
// errFn, when non-nil, receives watch errors.
func (w *Watcher) Run(ctx context.Context, errFn func(error)) {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !meaningful(ev) {
				continue
			}
			pending[ev.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-fire:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]struct{})
			timer = nil
			fire = nil
			w.callback(changed)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if errFn != nil {
				errFn(err)
			}
		}
	}
}

// Close stops the watcher. Run returns once the channels close.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// meaningful filters to content-changing operations on markdown files.
// CHMOD-only events and non-markdown paths are noise.
func meaningful(ev fsnotify.Event) bool {
	const ops = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	if ev.Op&ops == 0 {
		return false
	}
	return filepath.Ext(ev.Name) == ".md"
}
