package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Source hands out the landing content to render.
type Source interface {
	Current() *Landing
}

type fixed struct{ landing *Landing }

func (f fixed) Current() *Landing { return f.landing }

// Fixed is a Source that never changes.
func Fixed(landing *Landing) Source {
	return fixed{landing: landing}
}

// Watcher serves the content of an override file and reloads it when the
// file changes on disk. An invalid edit is logged and the last good content
// stays in place.
type Watcher struct {
	fs      afero.Fs
	path    string
	current atomic.Pointer[Landing]

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWatcher creates a Watcher for path, starting from initial.
func NewWatcher(fs afero.Fs, path string, initial *Landing) *Watcher {
	w := &Watcher{fs: fs, path: filepath.Clean(path)}
	w.current.Store(initial)
	return w
}

// Current implements Source.
func (w *Watcher) Current() *Landing {
	return w.current.Load()
}

// Reload reads the file again and swaps it in when it is valid.
func (w *Watcher) Reload() error {
	landing, err := Load(w.fs, w.path)
	if err != nil {
		return err
	}
	w.current.Store(landing)
	return nil
}

// Start watches the file's directory, so editors that replace the file on
// save are still seen.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.watcher = watcher
	w.cancel = cancel
	w.done = make(chan struct{})
	go w.watch(ctx, watcher, w.done)

	slog.Debug("Watching content file", "path", w.path)
	return nil
}

// Close stops watching. It is safe to call when Start was never called.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	w.watcher = nil
	return err
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if err := w.Reload(); err != nil {
		slog.Warn("Keeping previous landing content", "path", w.path, "error", err)
		return
	}
	slog.Info("Reloaded landing content", "path", w.path)
}
