package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/docindex/pkg/core"
)

// watchDebounce coalesces bursts of writes (editors, atomic renames) into
// one event.
const watchDebounce = 50 * time.Millisecond

// Watch reports changes to the index file until ctx is done. The parent
// directory is watched so that atomic replacements are observed.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	dir := filepath.Dir(r.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("%w: failed to watch %s: %w", core.ErrIO, dir, err)
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher failed", "path", r.Path, "error", err)
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- core.Event) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if r.config.Logger.Enabled(ctx, slog.LevelDebug) {
				r.config.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				r.config.Logger.Error("watcher panic", "error", err)
			}
		}
	}()

	var (
		pending *core.Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			r.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			eType := r.mapEventType(event)
			if eType == "" {
				continue
			}
			pending = &core.Event{Type: eType, Location: r.Path, Timestamp: time.Now()}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending == nil {
				continue
			}
			select {
			case events <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// mapEventType translates a directory event into an index event. Events for
// other files in the directory and bare chmods are ignored.
func (r *Repository) mapEventType(event fsnotify.Event) core.EventType {
	if filepath.Base(event.Name) != filepath.Base(r.Path) {
		return ""
	}
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}
