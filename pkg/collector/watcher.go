package collector

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions configures the stylesheet watcher.
type WatchOptions struct {
	// DebounceMs groups rapid changes to the same file; 0 means the
	// 200ms default.
	DebounceMs int
	// IgnorePatterns match against the file base name.
	IgnorePatterns []string
}

// DefaultWatchOptions returns the standard watch configuration.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// Watcher watches a directory tree for stylesheet and page changes and
// invokes a callback per changed file, debounced.
//
// Usage:
//
//	w, err := NewWatcher(DefaultWatchOptions(), onChange, logger)
//	if err != nil { ... }
//	if err := w.Start(root); err != nil { ... }
//	defer w.Stop()
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string)
	options  WatchOptions
	logger   *slog.Logger

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher. onChange runs on a timer goroutine and
// must be safe for concurrent invocation across distinct paths.
func NewWatcher(options WatchOptions, onChange func(path string), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	return &Watcher{
		watcher:        fsw,
		onChange:       onChange,
		options:        options,
		logger:         logger,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start begins watching rootPath and its subdirectories.
func (w *Watcher) Start(rootPath string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.mu.Unlock()

	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if w.shouldIgnore(path) {
				return filepath.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("failed to watch directory", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("setting up watches: %w", err)
	}

	w.logger.Info("watcher started", "root", rootPath)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if w.shouldIgnore(path) || !isWatchedFile(path) {
		return
	}

	w.logger.Debug("file event", "op", event.Op.String(), "file", path)

	if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
		w.debounce(path)
	}
}

// debounce schedules the callback after the debounce window; repeated
// events for the same file within the window fire it once.
func (w *Watcher) debounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}

	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.onChange(path)

			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

func (w *Watcher) shouldIgnore(path string) bool {
	for _, pattern := range w.options.IgnorePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}
	switch filepath.Base(path) {
	case "node_modules", ".git", "dist", "build":
		return true
	}
	return false
}

func isWatchedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css", ".html", ".htm":
		return true
	}
	return false
}
