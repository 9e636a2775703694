// Package watch regenerates output when the input file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls Regenerate after the watched file settles.
type Watcher struct {
	path     string
	dir      string
	debounce time.Duration
	log      *zap.Logger
	regen    func(context.Context) error
	ready    func(context.Context)
}

// New watches path. The parent directory is watched rather than the file so
// that editors which replace the file by rename are still seen.
func New(path string, debounce time.Duration, log *zap.Logger, regen func(context.Context) error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: debounce,
		log:      log,
		regen:    regen,
	}
}

// OnReady sets fn to run once the watch is registered, before any event is
// handled. Changes made while fn runs are still picked up.
func (w *Watcher) OnReady(fn func(context.Context)) {
	w.ready = fn
}

// Run blocks until ctx is done. Regeneration errors are logged, not returned;
// only failure to set up the watch is an error.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return err
	}
	w.log.Info("watching", zap.String("input", w.path))
	if w.ready != nil {
		w.ready(ctx)
	}

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.log.Debug("input event", zap.String("op", ev.Op.String()))
				fire = time.After(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := w.regen(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.log.Warn("regeneration failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		name = filepath.Clean(ev.Name)
	}
	return name == w.path
}
