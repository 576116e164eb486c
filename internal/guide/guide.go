// Package guide holds the program guide and resolves the current and next
// program for a channel at a given instant.
package guide

import (
	"sort"
	"time"
)

// Entry is a single program in the guide.
type Entry struct {
	ChannelID string
	Title     string
	Start     time.Time
	Stop      time.Time
}

// Guide is an immutable index of program entries keyed by channel id.
// Entries for a channel are kept sorted by start time.
type Guide struct {
	entries map[string][]Entry
}

// New builds a Guide from a flat entry list. Entries with a zero start or
// a stop not after the start are dropped; the caller gets the dropped count
// back so it can be reported.
func New(entries []Entry) (*Guide, int) {
	byChannel := make(map[string][]Entry)
	dropped := 0

	for _, e := range entries {
		if e.ChannelID == "" || e.Start.IsZero() || !e.Stop.After(e.Start) {
			dropped++
			continue
		}
		byChannel[e.ChannelID] = append(byChannel[e.ChannelID], e)
	}

	for id := range byChannel {
		es := byChannel[id]
		sort.SliceStable(es, func(i, j int) bool {
			return es[i].Start.Before(es[j].Start)
		})
		byChannel[id] = es
	}

	return &Guide{entries: byChannel}, dropped
}

// Empty returns a guide with no entries.
func Empty() *Guide {
	return &Guide{entries: map[string][]Entry{}}
}

// Len returns the total number of entries in the guide.
func (g *Guide) Len() int {
	n := 0
	for _, es := range g.entries {
		n += len(es)
	}
	return n
}

// Channels returns the number of channels that have at least one entry.
func (g *Guide) Channels() int {
	return len(g.entries)
}

// Resolve returns the current and next program for a channel at the given
// instant. The current program is the entry whose interval contains now;
// when overlapping entries both contain now, the one with the latest start
// wins. The next program is the entry with the smallest start after now.
// An unknown channel resolves to (nil, nil).
//
// Resolve does not read any state outside the guide, so it is safe to call
// concurrently.
func (g *Guide) Resolve(channelID string, now time.Time) (current, next *Entry) {
	entries := g.entries[channelID]

	for i := range entries {
		e := &entries[i]

		if !e.Start.After(now) && now.Before(e.Stop) {
			// Entries are sorted by start, so a later match has a
			// later or equal start and takes precedence.
			current = e
		}

		if e.Start.After(now) {
			// First start past now is the smallest one.
			next = e
			break
		}
	}

	return current, next
}
