// Package collector gathers raw colour and font declarations from web
// pages and stylesheets, local or remote, and hands them to the design
// model pipeline as weighted samples.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/palette"
	"github.com/huespec/huespec/pkg/util"
)

// Source weights. Larger means more authoritative: a declaration on the
// page root reflects rendered appearance more directly than an
// arbitrary rule, and inline styles sit in between.
const (
	WeightComputed = 5
	WeightInline   = 3
	WeightRule     = 1
)

// Result is the collected raw material of one extraction.
type Result struct {
	Colors []palette.Sample
	Fonts  []font.Sample
	// Stylesheets lists the external stylesheet URLs referenced by the
	// page, after resolution against the page URL.
	Stylesheets []string
}

// accumulator folds repeated declarations into per-sample occurrence
// counts, keyed by raw text, weight and background flag. Insertion
// order is preserved so results are deterministic.
type accumulator struct {
	colors     []palette.Sample
	colorIndex map[string]int
	fonts      []font.Sample
}

func newAccumulator() *accumulator {
	return &accumulator{colorIndex: make(map[string]int)}
}

func (a *accumulator) addColor(raw string, weight int, background bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	key := fmt.Sprintf("%s|%d|%t", strings.ToLower(raw), weight, background)
	if i, ok := a.colorIndex[key]; ok {
		a.colors[i].Count++
		return
	}
	a.colorIndex[key] = len(a.colors)
	a.colors = append(a.colors, palette.Sample{
		Raw:        raw,
		Weight:     weight,
		Count:      1,
		Background: background,
	})
}

func (a *accumulator) addFont(raw string, weight int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	a.fonts = append(a.fonts, font.Sample{Raw: raw, Weight: weight})
}

func (a *accumulator) result() *Result {
	return &Result{Colors: a.colors, Fonts: a.fonts}
}

// Collector drives page and stylesheet collection. It owns a CSS parser
// pool and a file cache for local extraction and must be closed.
type Collector struct {
	css     *StylesheetParser
	fetcher *Fetcher
	files   util.FileCache
	logger  *slog.Logger
}

// New creates a Collector. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		css:     NewStylesheetParser(logger),
		fetcher: NewFetcher(logger),
		files:   util.NewFileCache(util.DefaultFileCacheConfig()),
		logger:  logger,
	}
}

// Close releases parser and file-cache resources.
func (c *Collector) Close() error {
	c.css.Close()
	return c.files.Close()
}

// CollectURL fetches a page, parses its inline styles and style blocks,
// then fetches and parses every linked stylesheet. Stylesheet fetch
// failures are logged and skipped; the page itself failing is an error.
func (c *Collector) CollectURL(ctx context.Context, pageURL string) (*Result, error) {
	body, err := c.fetcher.Get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	acc := newAccumulator()
	hrefs, err := c.extractHTML(body, pageURL, acc)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	for _, href := range hrefs {
		css, err := c.fetcher.Get(ctx, href)
		if err != nil {
			c.logger.Warn("skipping stylesheet", "url", href, "error", err)
			continue
		}
		if err := c.css.ExtractStylesheet(css, WeightRule, acc); err != nil {
			c.logger.Warn("skipping unparsable stylesheet", "url", href, "error", err)
		}
	}

	res := acc.result()
	res.Stylesheets = hrefs
	c.logger.Info("page collected",
		"url", pageURL,
		"colors", len(res.Colors),
		"fonts", len(res.Fonts),
		"stylesheets", len(hrefs))
	return res, nil
}

// absKey normalizes a local path to its absolute form so file-cache
// keys and dedupe keys agree regardless of how callers spell the path.
func absKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Invalidate drops a file from the read cache so the next extraction
// sees its current content. Watch mode calls this per change event; the
// event path may be relative while the cache was filled from absolute
// discovery paths, so both normalize through absKey.
func (c *Collector) Invalidate(path string) {
	c.files.Release(absKey(path))
}

// CollectFiles extracts from local HTML and CSS files. Files are read
// through the mmap-backed cache so repeated extraction of the same tree
// (watch mode) avoids rereads. Unreadable files are logged and skipped.
func (c *Collector) CollectFiles(paths []string) (*Result, error) {
	acc := newAccumulator()
	var hrefs []string

	// A stylesheet that is both discovered and linked from a page must
	// contribute once, or its occurrence counts double and skew ranking.
	extracted := make(map[string]bool, len(paths))
	for _, path := range paths {
		extracted[absKey(path)] = true
	}

	for _, path := range paths {
		mf, err := c.files.Get(absKey(path))
		if err != nil {
			c.logger.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		data := mf.Bytes()

		switch strings.ToLower(filepath.Ext(path)) {
		case ".css":
			if err := c.css.ExtractStylesheet(data, WeightRule, acc); err != nil {
				c.logger.Warn("skipping unparsable stylesheet", "path", path, "error", err)
			}
		case ".html", ".htm":
			pageHrefs, err := c.extractHTML(data, "", acc)
			if err != nil {
				c.logger.Warn("skipping unparsable page", "path", path, "error", err)
				continue
			}
			// Relative hrefs resolve against the page's directory.
			for _, href := range pageHrefs {
				if !strings.Contains(href, "://") {
					href = filepath.Join(filepath.Dir(path), href)
					if key := absKey(href); !extracted[key] {
						extracted[key] = true
						if css, err := os.ReadFile(href); err == nil {
							if err := c.css.ExtractStylesheet(css, WeightRule, acc); err != nil {
								c.logger.Warn("skipping unparsable stylesheet", "path", href, "error", err)
							}
						}
					}
				}
				hrefs = append(hrefs, href)
			}
		default:
			c.logger.Debug("ignoring file with unsupported extension", "path", path)
		}
	}

	res := acc.result()
	res.Stylesheets = hrefs
	return res, nil
}
