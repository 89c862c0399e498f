// Package watcher monitors the guest list CSV on disk and reports when it
// has settled after a change, so the directory can be rebuilt without a
// restart or a half-written file being ingested.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a file must stay unchanged after the last
// write before a change event is emitted. Spreadsheet exports and scp both
// write in bursts.
const DefaultSettleDelay = 500 * time.Millisecond

// FileWatcher watches a single file by watching its parent directory, since
// editors often replace files via rename. Events are debounced until the
// file's size and mtime stop moving.
type FileWatcher struct {
	path        string
	settleDelay time.Duration
	logger      *slog.Logger
	watcher     *fsnotify.Watcher

	mu      sync.Mutex
	pending *pendingEvent

	events chan string
	done   chan struct{}
	wg     sync.WaitGroup
	stop   sync.Once
}

// pendingEvent tracks a file that may still be changing.
type pendingEvent struct {
	size    int64
	modTime time.Time
	timer   *time.Timer
}

// New creates a watcher for the given file path. A zero settleDelay uses
// DefaultSettleDelay.
func New(path string, settleDelay time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}

	return &FileWatcher{
		path:        path,
		settleDelay: settleDelay,
		logger:      logger,
		watcher:     fsw,
		events:      make(chan string, 8),
		done:        make(chan struct{}),
	}, nil
}

// Events delivers the watched path each time the file settles after a change.
func (w *FileWatcher) Events() <-chan string {
	return w.events
}

// Start processes filesystem events until the context is canceled or Stop is
// called.
func (w *FileWatcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.loop(ctx)
}

func (w *FileWatcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("guest list watcher error", "error", err)
		}
	}
}

// handle filters events down to the watched file and starts the settle timer.
func (w *FileWatcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.startSettling()
}

func (w *FileWatcher) startSettling() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.timer.Stop()
	}

	info, err := os.Stat(w.path)
	if err != nil {
		// Renamed away or mid-replace; the next event restarts settling.
		w.pending = nil
		return
	}

	pending := &pendingEvent{
		size:    info.Size(),
		modTime: info.ModTime(),
	}
	pending.timer = time.AfterFunc(w.settleDelay, w.checkSettled)
	w.pending = pending
}

// checkSettled emits an event once the file stops changing, otherwise
// restarts the settle timer with the latest size and mtime.
func (w *FileWatcher) checkSettled() {
	w.mu.Lock()
	defer w.mu.Unlock()

	pending := w.pending
	if pending == nil {
		return
	}

	info, err := os.Stat(w.path)
	if err != nil {
		w.pending = nil
		return
	}

	if info.Size() != pending.size || !info.ModTime().Equal(pending.modTime) {
		pending.size = info.Size()
		pending.modTime = info.ModTime()
		pending.timer = time.AfterFunc(w.settleDelay, w.checkSettled)
		return
	}

	w.pending = nil
	select {
	case w.events <- w.path:
	case <-w.done:
	default:
		w.logger.Debug("dropping settle event, channel full", "path", w.path)
	}
}

// Stop shuts the watcher down and waits for its goroutine to exit.
func (w *FileWatcher) Stop() {
	w.stop.Do(func() {
		close(w.done)

		w.mu.Lock()
		if w.pending != nil {
			w.pending.timer.Stop()
			w.pending = nil
		}
		w.mu.Unlock()

		w.watcher.Close()
		w.wg.Wait()
		close(w.events)
	})
}
