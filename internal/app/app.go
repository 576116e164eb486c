// Package app wires ingestion, the program guide and the catalog together
// and owns the current snapshot.
package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/alorle/acestream-panel/config"
	"github.com/alorle/acestream-panel/fetcher"
	"github.com/alorle/acestream-panel/internal/catalog"
	"github.com/alorle/acestream-panel/internal/guide"
	"github.com/alorle/acestream-panel/internal/ingest"
	"github.com/alorle/acestream-panel/internal/scrape"
	"github.com/alorle/acestream-panel/internal/settings"
	"github.com/alorle/acestream-panel/logging"
	"github.com/alorle/acestream-panel/metrics"
)

// SettingsRepository abstracts where panel settings are persisted.
type SettingsRepository interface {
	Load(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
}

// App coordinates the ingestion pipelines, guide refreshes and snapshot
// swaps. All mutating entry points go through Refresh, which replaces the
// snapshot atomically; concurrent submits resolve to last-write-wins.
type App struct {
	cfg      *config.Config
	log      *logging.Logger
	fetch    fetcher.Interface
	ingestor *ingest.Ingestor
	scrapers *scrape.Registry
	store    *catalog.Store
	repo     SettingsRepository

	guide atomic.Pointer[guide.Guide]

	// now is swappable for tests.
	now func() time.Time
}

// New creates an App.
func New(cfg *config.Config, log *logging.Logger, fetch fetcher.Interface, repo SettingsRepository) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		fetch:    fetch,
		ingestor: ingest.New(fetch, log, cfg.Fetch.Concurrency),
		scrapers: scrape.NewRegistry(),
		store:    catalog.NewStore(),
		repo:     repo,
		now:      time.Now,
	}
	a.guide.Store(guide.Empty())
	return a
}

// Snapshot returns the catalog snapshot the UI should render.
func (a *App) Snapshot() *catalog.Snapshot {
	return a.store.Current()
}

// Settings loads the persisted panel settings.
func (a *App) Settings(ctx context.Context) (settings.Settings, error) {
	return a.repo.Load(ctx)
}

// SaveSettings validates and persists the panel settings. Validation
// failures leave the stored value untouched.
func (a *App) SaveSettings(ctx context.Context, s settings.Settings) error {
	if err := a.repo.Save(ctx, s); err != nil {
		reason := "storage"
		if errors.Is(err, settings.ErrInvalidProtocol) || errors.Is(err, settings.ErrInvalidServer) {
			reason = "validation"
		}
		metrics.SettingsSaveFailures.WithLabelValues(reason).Inc()
		return err
	}
	return nil
}

// RefreshGuide fetches and parses the configured XMLTV source, replacing
// the in-memory guide. A fetch failure keeps the previous guide.
func (a *App) RefreshGuide(ctx context.Context) error {
	content, _, _, err := a.fetch.Fetch(ctx, a.cfg.Guide.URL)
	if err != nil {
		a.log.Warn("Guide fetch failed, keeping previous guide", map[string]interface{}{
			"url": a.cfg.Guide.URL, "error": err.Error(),
		})
		return err
	}

	entries, skipped, err := guide.ParseXMLTV(content)
	if err != nil {
		a.log.Warn("Guide parse failed, keeping previous guide", map[string]interface{}{
			"url": a.cfg.Guide.URL, "error": err.Error(),
		})
		return err
	}

	g, dropped := guide.New(entries)
	a.guide.Store(g)

	metrics.GuideEntries.Set(float64(g.Len()))
	metrics.GuideAnomalies.Add(float64(skipped + dropped))
	a.log.LogGuideRefresh(a.cfg.Guide.URL, g.Channels(), g.Len(), skipped+dropped)

	return nil
}

// Refresh runs the three ingestion pipelines against the given settings
// and swaps in a freshly built snapshot. Ingestion is best-effort: the
// returned reports carry the per-kind skip counters.
func (a *App) Refresh(ctx context.Context, s settings.Settings) []ingest.Report {
	var drafts []ingest.Draft
	var reports []ingest.Report
	stats := catalog.Stats{}

	run := func(urls []string, kind ingest.Kind) {
		var kindDrafts []ingest.Draft
		var report ingest.Report

		if kind == ingest.KindWeb {
			kindDrafts, report = a.ingestWeb(ctx, urls)
		} else {
			kindDrafts, report = a.ingestor.Ingest(ctx, urls, kind)
		}

		drafts = append(drafts, kindDrafts...)
		reports = append(reports, report)
		stats.SourcesSkipped += report.SourcesSkipped
		stats.Malformed += report.Malformed
		metrics.RecordIngest(string(kind), report.SourcesSkipped, report.Malformed)
	}

	run(a.sourceURLs(s.DirectSources, a.cfg.Sources.Direct), ingest.KindDirect)
	run(a.sourceURLs(s.MovieSources, a.cfg.Sources.Movies), ingest.KindMovie)
	run(a.sourceURLs(s.WebSources, a.cfg.Sources.Web), ingest.KindWeb)

	snap := catalog.Build(drafts, a.guide.Load(), a.now(), stats)
	a.store.Swap(snap)

	metrics.RecordSnapshot(len(snap.Groups), len(snap.Channels))
	a.log.LogSnapshotSwap(snap.ID, len(snap.Groups), len(snap.Channels))

	return reports
}

// sourceURLs prefers the user's textarea content and falls back to the
// configured defaults when it is blank.
func (a *App) sourceURLs(raw string, defaults []string) []string {
	if urls := settings.SourceURLs(raw); len(urls) > 0 {
		return urls
	}
	return defaults
}

// ingestWeb handles the web-IPTV pipeline: URLs with a registered scraper
// are scraped into event drafts, the rest are treated as plain playlists.
// The same last-wins dedup applies across both.
func (a *App) ingestWeb(ctx context.Context, urls []string) ([]ingest.Draft, ingest.Report) {
	var scrapeURLs, playlistURLs []string
	for _, url := range urls {
		if _, err := a.scrapers.For(url); err == nil {
			scrapeURLs = append(scrapeURLs, url)
		} else {
			playlistURLs = append(playlistURLs, url)
		}
	}

	drafts, report := a.ingestor.Ingest(ctx, playlistURLs, ingest.KindWeb)

	byID := make(map[string]int, len(drafts))
	for i, d := range drafts {
		byID[d.ID] = i
	}

	for _, url := range scrapeURLs {
		content, _, _, err := a.fetch.Fetch(ctx, url)
		if err != nil {
			a.log.LogSourceSkipped(url, err)
			report.SourcesSkipped++
			continue
		}

		events, err := a.scrapers.Extract(url, content)
		if err != nil {
			a.log.LogSourceSkipped(url, err)
			report.SourcesSkipped++
			continue
		}
		report.SourcesFetched++

		for _, d := range scrape.ToDrafts(url, events) {
			if idx, seen := byID[d.ID]; seen {
				drafts[idx] = d
				continue
			}
			byID[d.ID] = len(drafts)
			drafts = append(drafts, d)
		}
	}

	report.Channels = len(drafts)
	return drafts, report
}
