package fetcher

import "context"

// Interface defines the contract for fetching remote documents with caching
type Interface interface {
	// Fetch retrieves a document with the cache-first strategy.
	// Returns: content, fromCache, stale, error.
	Fetch(ctx context.Context, url string) ([]byte, bool, bool, error)
}

var _ Interface = (*Fetcher)(nil)
