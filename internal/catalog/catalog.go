// Package catalog assembles ingested channel drafts and guide enrichment
// into immutable snapshots.
package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/alorle/acestream-panel/internal/guide"
	"github.com/alorle/acestream-panel/internal/ingest"
)

// Channel is a fully resolved catalog entry.
type Channel struct {
	ID    string
	EPGID string
	Name  string
	Group string
	Logo  string
	Kind  ingest.Kind

	// Guide enrichment; empty when no guide entry matches.
	Current     string
	CurrentTime string
	Next        string
	NextTime    string
}

// Stats carries the ingestion counters a snapshot was built from, so the
// page can show the user what was skipped.
type Stats struct {
	SourcesSkipped int
	Malformed      int
}

// Snapshot is an immutable view of the whole catalog at one point in time.
// The UI renders exactly one snapshot; replacement is atomic via Store.
type Snapshot struct {
	ID       string
	BuiltAt  time.Time
	Groups   []string
	Channels []Channel
	Stats    Stats
}

// timeLayout is the clock format shown next to program titles.
const timeLayout = "15:04"

// Build assembles a snapshot from drafts enriched with the program guide.
//
// Group order is first-seen order across the draft sequence, with duplicate
// labels collapsing into the first occurrence. Channels keep their draft
// order, so two builds from identical inputs and the same now are
// identical.
func Build(drafts []ingest.Draft, g *guide.Guide, now time.Time, stats Stats) *Snapshot {
	snap := &Snapshot{
		ID:       uuid.NewString(),
		BuiltAt:  now,
		Groups:   make([]string, 0),
		Channels: make([]Channel, 0, len(drafts)),
		Stats:    stats,
	}

	seen := make(map[string]bool)
	for _, d := range drafts {
		if !seen[d.Group] {
			seen[d.Group] = true
			snap.Groups = append(snap.Groups, d.Group)
		}

		ch := Channel{
			ID:    d.ID,
			EPGID: d.EPGID,
			Name:  d.Name,
			Group: d.Group,
			Logo:  d.Logo,
			Kind:  d.Kind,
		}

		current, next := g.Resolve(d.EPGID, now)
		if current != nil {
			ch.Current = current.Title
			ch.CurrentTime = current.Start.Local().Format(timeLayout)
		}
		if next != nil {
			ch.Next = next.Title
			ch.NextTime = next.Start.Local().Format(timeLayout)
		}

		snap.Channels = append(snap.Channels, ch)
	}

	return snap
}

// ByGroup returns the snapshot's channels belonging to one group, in
// catalog order.
func (s *Snapshot) ByGroup(group string) []Channel {
	var out []Channel
	for _, ch := range s.Channels {
		if ch.Group == group {
			out = append(out, ch)
		}
	}
	return out
}
