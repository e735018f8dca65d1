// Package watch re-runs a split whenever a watched input file changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events for a fixed set of files and invokes a
// handler per changed file. Parent directories are watched rather than the
// files themselves so editor save-via-rename still triggers.
type Watcher struct {
	fsw      *fsnotify.Watcher
	log      *slog.Logger
	debounce time.Duration
	handler  func(path string)

	files map[string]bool // absolute path → watched

	pendingMu sync.Mutex
	pending   map[string]bool
}

// New creates a watcher that calls handler with the path of each changed
// watched file, debounced by the given delay.
func New(log *slog.Logger, debounce time.Duration, handler func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &Watcher{
		fsw:      fsw,
		log:      log,
		debounce: debounce,
		handler:  handler,
		files:    make(map[string]bool),
		pending:  make(map[string]bool),
	}, nil
}

// Add registers a file to watch.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	w.files[abs] = true
	return nil
}

// Run processes events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	w.log.Info("watching for changes", "files", len(w.files), "debounce", w.debounce)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}

	w.pendingMu.Lock()
	w.pending[abs] = true
	w.pendingMu.Unlock()

	w.log.Debug("change detected", "path", abs, "op", event.Op.String())
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	for _, p := range paths {
		w.handler(p)
	}
}
