package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SnapshotChannels tracks the channel count of the current snapshot
	SnapshotChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "panel_snapshot_channels",
		Help: "Number of channels in the current catalog snapshot",
	})

	// SnapshotGroups tracks the group count of the current snapshot
	SnapshotGroups = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "panel_snapshot_groups",
		Help: "Number of groups in the current catalog snapshot",
	})

	// SnapshotBuilds counts catalog snapshot rebuilds
	SnapshotBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "panel_snapshot_builds_total",
		Help: "Total number of catalog snapshot builds",
	})

	// SourcesSkipped counts playlist sources skipped during ingestion
	SourcesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "panel_sources_skipped_total",
		Help: "Total number of playlist sources skipped during ingestion",
	}, []string{"kind"})

	// MalformedLines counts playlist lines skipped as unparseable
	MalformedLines = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "panel_malformed_lines_total",
		Help: "Total number of malformed playlist lines skipped",
	}, []string{"kind"})

	// GuideEntries tracks the entry count of the loaded program guide
	GuideEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "panel_guide_entries",
		Help: "Number of entries in the loaded program guide",
	})

	// GuideAnomalies counts overlapping or malformed guide entries observed
	GuideAnomalies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "panel_guide_anomalies_total",
		Help: "Total number of guide anomalies observed while parsing",
	})

	// SettingsSaveFailures counts settings saves that did not persist,
	// labelled by cause: "validation" or "storage"
	SettingsSaveFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "panel_settings_save_failures_total",
		Help: "Total number of settings saves that failed, by reason",
	}, []string{"reason"})
)

// RecordSnapshot updates the snapshot gauges after a catalog rebuild
func RecordSnapshot(groups, channels int) {
	SnapshotBuilds.Inc()
	SnapshotGroups.Set(float64(groups))
	SnapshotChannels.Set(float64(channels))
}

// RecordIngest records the per-kind skip counters of one ingestion run
func RecordIngest(kind string, skippedSources, malformedLines int) {
	SourcesSkipped.WithLabelValues(kind).Add(float64(skippedSources))
	MalformedLines.WithLabelValues(kind).Add(float64(malformedLines))
}
