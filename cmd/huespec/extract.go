package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/huespec/huespec/pkg/collector"
	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/render"
)

// extractOptions holds parsed flags shared by extract and watch.
type extractOptions struct {
	target   string
	formats  []string
	outDir   string
	logLevel string
}

func parseExtractFlags(args []string) (extractOptions, error) {
	var opts extractOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--format":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--format requires a value")
			}
			i++
			for _, f := range strings.Split(args[i], ",") {
				if f = strings.TrimSpace(f); f != "" {
					opts.formats = append(opts.formats, f)
				}
			}
		case "--out":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--out requires a value")
			}
			i++
			opts.outDir = args[i]
		case "--log-level":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--log-level requires a value")
			}
			i++
			opts.logLevel = args[i]
		default:
			if strings.HasPrefix(args[i], "--") {
				return opts, fmt.Errorf("unknown flag: %s", args[i])
			}
			if opts.target != "" {
				return opts, fmt.Errorf("unexpected argument: %s", args[i])
			}
			opts.target = args[i]
		}
	}
	if opts.target == "" {
		return opts, fmt.Errorf("a URL or directory argument is required")
	}
	return opts, nil
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// extractTarget runs a full extraction of a URL or a local directory.
func extractTarget(ctx context.Context, col *collector.Collector, target string, opts model.Options, logger *slog.Logger) (*model.Model, error) {
	var result *collector.Result
	var err error

	if isURL(target) {
		result, err = col.CollectURL(ctx, target)
	} else {
		var paths []string
		paths, err = collector.Discover(target, nil)
		if err == nil {
			result, err = col.CollectFiles(paths)
		}
	}
	if err != nil {
		return nil, err
	}

	m := model.Build(result.Colors, result.Fonts, opts, logger)
	m.Source = target
	return m, nil
}

// writeArtifacts renders the model in every requested format into outDir.
func writeArtifacts(m *model.Model, formats []string, outDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, name := range formats {
		format, err := render.ParseFormat(name)
		if err != nil {
			return err
		}
		out, err := render.Render(m, format)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", format, err)
		}
		path := filepath.Join(outDir, render.FileName(format))
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("artifact written", "format", string(format), "path", path)
	}
	return nil
}

func runExtract(args []string) error {
	opts, err := parseExtractFlags(args)
	if err != nil {
		return err
	}

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

	m, err := extractTarget(context.Background(), col, opts.target, cfg.options(), logger)
	if err != nil {
		return err
	}
	if m.Empty() {
		logger.Warn("no colours or fonts extracted", "target", opts.target)
	}
	return writeArtifacts(m, opts.formats, opts.outDir, logger)
}
