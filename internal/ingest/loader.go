package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "embed"
)

//go:embed sample/guests.csv
var sampleCSV []byte

// Source identifies where a loaded guest list came from.
type Source string

// Guest list sources.
const (
	SourceFile   Source = "file"
	SourceURL    Source = "url"
	SourceSample Source = "sample"
)

// Loader fetches and parses the guest list. A failed or rejected source falls
// back to the bundled sample so the service always has a directory to serve.
type Loader struct {
	path    string
	url     string
	timeout time.Duration
	retries int
	client  *http.Client
	logger  *slog.Logger
}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	Path    string
	URL     string
	Timeout time.Duration
	Retries int
	Client  *http.Client // optional, defaults to http.DefaultClient
}

// NewLoader creates a guest list loader.
func NewLoader(opts LoaderOptions, logger *slog.Logger) *Loader {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Loader{
		path:    opts.Path,
		url:     opts.URL,
		timeout: timeout,
		retries: opts.Retries,
		client:  client,
		logger:  logger,
	}
}

// Load reads the configured source and parses it. The file path wins over the
// URL when both are set. Any failure, including header validation, falls back
// to the bundled sample; the sample itself is expected to always parse.
func (l *Loader) Load(ctx context.Context) ([]Row, Source, error) {
	if l.path != "" {
		rows, err := l.loadFile()
		if err == nil {
			return rows, SourceFile, nil
		}
		l.logger.Warn("failed to load guest list from file, falling back",
			"path", l.path,
			"error", err,
		)
	}

	if l.url != "" {
		rows, err := l.loadURL(ctx)
		if err == nil {
			return rows, SourceURL, nil
		}
		l.logger.Warn("failed to load guest list from URL, falling back",
			"url", l.url,
			"error", err,
		)
	}

	rows, err := Parse(sampleCSV)
	if err != nil {
		return nil, SourceSample, fmt.Errorf("parse bundled sample: %w", err)
	}
	l.logger.Info("using bundled sample guest list", "rows", len(rows))
	return rows, SourceSample, nil
}

func (l *Loader) loadFile() ([]Row, error) {
	content, err := os.ReadFile(l.path) //#nosec G304 -- CSV path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(content)
}

// loadURL fetches the CSV with bounded retries. Retries use a short fixed
// delay rather than backoff; the caller falls back to the sample anyway.
func (l *Loader) loadURL(ctx context.Context) ([]Row, error) {
	var lastErr error
	for attempt := 0; attempt <= l.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
			}
			l.logger.Debug("retrying guest list fetch", "attempt", attempt+1, "url", l.url)
		}

		rows, err := l.fetchOnce(ctx)
		if err == nil {
			return rows, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (l *Loader) fetchOnce(ctx context.Context) ([]Row, error) {
	reqCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: unexpected status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return Parse(content)
}

// SampleRows parses the bundled sample guest list. Exposed for the inspection
// CLI and tests.
func SampleRows() ([]Row, error) {
	return Parse(sampleCSV)
}
