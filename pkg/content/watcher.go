package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changed content keys under a directory, debounced.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	debounce  time.Duration
	onChange  func(keys []string)
	logger    *slog.Logger
	done      chan struct{}
	stopped   chan struct{}
}

// WatcherConfig holds watcher options.
type WatcherConfig struct {
	Root     string
	Debounce time.Duration

	// OnChange receives the keys changed since the last call, sorted.
	OnChange func(keys []string)
	Logger   *slog.Logger
}

// NewWatcher creates a watcher. Call Start to begin watching.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("content watcher: OnChange is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsWatcher: fsw,
		root:      cfg.Root,
		debounce:  cfg.Debounce,
		onChange:  cfg.OnChange,
		logger:    cfg.Logger.With("component", "content-watcher"),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}, nil
}

// WatchCache returns a watcher that invalidates c for every changed key
// under src's root.
func WatchCache(src *DirSource, c *Cached, logger *slog.Logger) (*Watcher, error) {
	return NewWatcher(WatcherConfig{
		Root:     src.Root(),
		OnChange: func(keys []string) { c.Invalidate(keys...) },
		Logger:   logger,
	})
}

// Start watches the root and every directory below it.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsWatcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", w.root, err)
	}
	go w.loop()
	return nil
}

// Stop terminates the watcher and waits for its loop to exit.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	<-w.stopped
	return err
}

func (w *Watcher) loop() {
	defer close(w.stopped)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = map[string]struct{}{}
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			key, ok := w.keyFor(event)
			if !ok {
				continue
			}
			pending[key] = struct{}{}

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
			timerC = timer.C

		case <-timerC:
			timerC = nil
			if len(pending) == 0 {
				continue
			}
			keys := make([]string, 0, len(pending))
			for k := range pending {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			pending = map[string]struct{}{}
			w.onChange(keys)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// keyFor maps an event to a content key. New directories are added to the
// watch list and produce no key.
func (w *Watcher) keyFor(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsWatcher.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch directory", "dir", event.Name, "error", err)
			}
			return "", false
		}
	}
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		return "", false
	}
	key := filepath.ToSlash(rel)
	return key, ValidKey(key)
}
