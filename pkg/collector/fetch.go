package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	fetchTimeout = 15 * time.Second
	// maxBodyBytes caps response bodies; stylesheets beyond this are
	// truncated rather than rejected, partial CSS still extracts.
	maxBodyBytes = 10 << 20

	userAgent = "huespec/1.0 (+https://github.com/huespec/huespec)"
)

// Fetcher retrieves pages and stylesheets over HTTP.
type Fetcher struct {
	client *http.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher with a bounded timeout.
func NewFetcher(logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Get fetches a URL and returns the body, capped at maxBodyBytes.
// Non-2xx responses are errors.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,text/css,*/*")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}

	f.logger.Debug("fetched",
		"url", url,
		"bytes", len(body),
		"ms", time.Since(start).Milliseconds())
	return body, nil
}
