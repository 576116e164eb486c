// Package ingest turns user-supplied playlist sources into channel drafts.
// The three list kinds run through the same parser and dedup policy but
// never mix: each pipeline run produces its own draft set.
package ingest

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/alorle/acestream-panel/fetcher"
	"github.com/alorle/acestream-panel/logging"
)

// Report summarizes one ingestion run. Ingestion is best-effort: failures
// are counted here instead of aborting the batch.
type Report struct {
	Kind           Kind
	SourcesFetched int
	SourcesSkipped int
	Malformed      int
	Channels       int
}

// Ingestor fetches and parses playlist sources for one list kind at a time.
type Ingestor struct {
	fetch       fetcher.Interface
	log         *logging.Logger
	concurrency int64
}

// New creates an Ingestor. concurrency bounds how many source URLs are
// fetched in parallel.
func New(fetch fetcher.Interface, log *logging.Logger, concurrency int) *Ingestor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Ingestor{fetch: fetch, log: log, concurrency: int64(concurrency)}
}

// Ingest fetches every source URL and merges the parsed drafts.
//
// Sources are fetched concurrently but merged in the configured URL order,
// and on duplicate ids the last source wins: a personal list placed after a
// default list overrides its channels. A source that cannot be fetched is
// skipped and counted, never fatal.
func (in *Ingestor) Ingest(ctx context.Context, urls []string, kind Kind) ([]Draft, Report) {
	report := Report{Kind: kind}

	type result struct {
		drafts    []Draft
		malformed int
		err       error
	}
	results := make([]result, len(urls))

	sem := semaphore.NewWeighted(in.concurrency)
	var wg sync.WaitGroup
	for i, url := range urls {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = result{err: err}
			continue
		}
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			defer sem.Release(1)
			content, _, _, err := in.fetch.Fetch(ctx, url)
			if err != nil {
				results[i] = result{err: err}
				return
			}
			drafts, malformed := Parse(content, kind)
			results[i] = result{drafts: drafts, malformed: malformed}
		}(i, url)
	}
	wg.Wait()

	// Merge in URL order so later sources override earlier ones.
	byID := make(map[string]int)
	var merged []Draft
	for i, url := range urls {
		res := results[i]
		if res.err != nil {
			in.log.LogSourceSkipped(url, res.err)
			report.SourcesSkipped++
			continue
		}
		report.SourcesFetched++
		report.Malformed += res.malformed

		for _, d := range res.drafts {
			if idx, seen := byID[d.ID]; seen {
				// Last-ingested wins, keeping the original position
				// so channel order stays stable.
				merged[idx] = d
				continue
			}
			byID[d.ID] = len(merged)
			merged = append(merged, d)
		}
	}

	report.Channels = len(merged)
	in.log.LogIngestComplete(string(kind), report.Channels, report.SourcesSkipped, report.Malformed)

	return merged, report
}
