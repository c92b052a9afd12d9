package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/huespec/huespec/pkg/collector"
)

func runWatch(args []string) error {
	opts, err := parseExtractFlags(args)
	if err != nil {
		return err
	}
	if isURL(opts.target) {
		return fmt.Errorf("watch requires a local directory, not a URL")
	}
	if info, err := os.Stat(opts.target); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", opts.target)
	}
	// Watch event paths must line up with the absolute keys the file
	// cache is filled under, or invalidation misses and re-extraction
	// reads stale mapped content.
	target, err := filepath.Abs(opts.target)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", opts.target, err)
	}
	opts.target = target

	cfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}
	if opts.formats == nil {
		opts.formats = cfg.Formats
	}
	if opts.outDir == "" {
		opts.outDir = cfg.Output
	}

	logger := newLogger(opts.logLevel)
	col := collector.New(logger)
	defer col.Close()

	// Re-extractions run one at a time; the debounced watcher callback
	// may fire concurrently for distinct files.
	var mu sync.Mutex
	rebuild := func() {
		mu.Lock()
		defer mu.Unlock()
		m, err := extractTarget(context.Background(), col, opts.target, cfg.options(), logger)
		if err != nil {
			logger.Error("extraction failed", "target", opts.target, "error", err)
			return
		}
		if err := writeArtifacts(m, opts.formats, opts.outDir, logger); err != nil {
			logger.Error("writing artifacts failed", "error", err)
		}
	}

	rebuild()

	w, err := collector.NewWatcher(collector.DefaultWatchOptions(), func(path string) {
		logger.Info("change detected", "path", path)
		col.Invalidate(path)
		rebuild()
	}, logger)
	if err != nil {
		return err
	}
	if err := w.Start(opts.target); err != nil {
		return err
	}
	defer w.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")
	return nil
}
