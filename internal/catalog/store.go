package catalog

import "sync/atomic"

// Store holds the current snapshot. Swap replaces it atomically, so
// concurrent submits resolve to last-write-wins and a reader never sees a
// half-built catalog.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store primed with an empty snapshot so callers never
// have to nil-check.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{Groups: []string{}, Channels: []Channel{}})
	return s
}

// Current returns the snapshot the UI should render.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap installs a new snapshot, replacing the previous one.
func (s *Store) Swap(next *Snapshot) {
	if next == nil {
		return
	}
	s.current.Store(next)
}
