package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alorle/acestream-panel/cache"
	"github.com/alorle/acestream-panel/logging"
)

// Fetcher downloads playlist and guide documents over HTTP with a
// file-cache fallback: fresh cache is served without a request, an expired
// cache triggers a refresh, and a failed refresh degrades to stale content.
type Fetcher struct {
	client   *http.Client
	storage  cache.Storage
	cacheTTL time.Duration
	log      *logging.Logger
}

// New creates a new Fetcher with the specified per-request timeout and
// cache configuration
func New(timeout time.Duration, storage cache.Storage, cacheTTL time.Duration, log *logging.Logger) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		storage:  storage,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Fetch retrieves a document with the cache-first strategy.
// Returns the content, whether it came from cache, and whether it was stale.
func (f *Fetcher) Fetch(ctx context.Context, url string) (content []byte, fromCache, stale bool, err error) {
	entry, cacheErr := f.storage.Get(url)

	if cacheErr == nil {
		expired, expErr := f.storage.IsExpired(url, f.cacheTTL)
		if expErr == nil && !expired {
			f.log.Debug("Serving fresh cache", map[string]interface{}{
				"url": url, "age": time.Since(entry.Timestamp).String(),
			})
			return entry.Content, true, false, nil
		}
	} else if !errors.Is(cacheErr, cache.ErrNotFound) {
		f.log.Warn("Cache read failed", map[string]interface{}{"url": url, "error": cacheErr.Error()})
	}

	content, fetchErr := f.fetchFromURL(ctx, url)
	if fetchErr == nil {
		if setErr := f.storage.Set(url, content); setErr != nil {
			f.log.Warn("Cache update failed", map[string]interface{}{"url": url, "error": setErr.Error()})
		}
		return content, false, false, nil
	}

	if cacheErr != nil {
		return nil, false, false, fmt.Errorf("upstream fetch failed and no cache available: %w", fetchErr)
	}

	f.log.Warn("Serving stale cache", map[string]interface{}{
		"url": url, "age": time.Since(entry.Timestamp).String(), "error": fetchErr.Error(),
	})
	return entry.Content, true, true, nil
}

func (f *Fetcher) fetchFromURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", "acestream-panel/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request returned status %d: %s", resp.StatusCode, resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return content, nil
}
