// Package watch re-renders a comment file whenever it changes on disk.
//
// A Watcher observes the file's directory, so editors that save by writing
// a temporary file and renaming it over the original are still seen.
// Bursts of events within the debounce window collapse into one
// notification.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-commentfmt/internal/fileutil"
	"github.com/alnah/go-commentfmt/internal/logging"
)

// DefaultDebounce is the quiet period used when Config.Debounce is zero.
const DefaultDebounce = 150 * time.Millisecond

// ErrEmptyPath indicates a watcher created without a file path.
var ErrEmptyPath = errors.New("watch: empty path")

// Config holds watcher configuration options.
type Config struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watcher monitors one file for changes and sends notifications.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	logger    *slog.Logger
	onChange  chan struct{}
	done      chan struct{}
}

// New creates a watcher for cfg.Path.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, ErrEmptyPath
	}
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", cfg.Path, err)
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(path),
		debounce:  debounce,
		logger:    logger.With("path", path),
		onChange:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins watching the file's directory.
// The returned channel receives a signal after each debounced change.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			w.logger.Debug("file_event", "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			// Drop the signal when one is already pending.
			select {
			case w.onChange <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch_error", "error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent reports whether event touches the watched file with an
// operation that can change its content.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}

// RenderFunc receives the file content after each change.
type RenderFunc func(content string) error

// Run reads the file, calls render, then calls it again after every change
// until ctx is done. A file that briefly disappears during an atomic save
// is skipped until the next event. Errors from render stop the loop.
func Run(ctx context.Context, cfg Config, render RenderFunc) error {
	w, err := New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if !fileutil.FileExists(w.path) {
		return fmt.Errorf("watch: %s: %w", w.path, os.ErrNotExist)
	}

	changes, err := w.Start()
	if err != nil {
		return err
	}

	update := func() error {
		content, err := fileutil.ReadFile(w.path, nil)
		if err != nil {
			if fileutil.FileExists(w.path) {
				return err
			}
			w.logger.Debug("file_missing")
			return nil
		}
		return render(content)
	}

	if err := update(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			start := time.Now()
			if err := update(); err != nil {
				return err
			}
			w.logger.Debug("rerendered", "elapsed", time.Since(start))
		}
	}
}
