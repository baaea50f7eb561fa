package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"owl/application"
)

// HTTPFetcher downloads remote files over HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the given per-request timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads url to destPath and returns the number of bytes written.
// A non-success transport status is an error, and a partial file is removed
// before returning.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, application.NewAdapterError("file fetch", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, application.NewAdapterError("file fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, application.NewAdapterError("file fetch", fmt.Errorf("unexpected status %s for %s", resp.Status, url))
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, application.NewAdapterError("file fetch", err)
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		os.Remove(destPath)
		return 0, application.NewAdapterError("file fetch", err)
	}
	return written, nil
}
