package present

import "strings"

// FormState is the source-form state: Empty until the textarea has any
// non-whitespace content, Loaded afterwards.
type FormState int

const (
	StateEmpty FormState = iota
	StateLoaded
)

func (s FormState) String() string {
	if s == StateLoaded {
		return "loaded"
	}
	return "empty"
}

// Eval computes the form state from the textarea content. It is a pure
// function, so re-evaluating on every input event is idempotent: the same
// text always yields the same state.
func Eval(text string) FormState {
	if strings.TrimSpace(text) == "" {
		return StateEmpty
	}
	return StateLoaded
}

// Controls is the visibility set derived from a form state.
type Controls struct {
	DefaultListButton bool
	DownloadButtons   bool
	SearchBox         bool
}

// ControlsFor returns which controls are visible in a state: the
// default-list button only while Empty, the download and search controls
// only while Loaded.
func ControlsFor(state FormState) Controls {
	loaded := state == StateLoaded
	return Controls{
		DefaultListButton: !loaded,
		DownloadButtons:   loaded,
		SearchBox:         loaded,
	}
}

// Matches reports whether a channel stays visible under a search query:
// true when the name or the current program text contains the query,
// case-insensitively. An empty query matches everything. Filtering is pure
// visibility; the snapshot is never touched, so clearing the query restores
// the full list as it was.
func Matches(ch RenderChannel, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(ch.Name), query) ||
		strings.Contains(strings.ToLower(ch.CurrentProgram), query)
}

// Filter returns the channels visible under a query, preserving order.
func Filter(channels []RenderChannel, query string) []RenderChannel {
	if strings.TrimSpace(query) == "" {
		return channels
	}
	var out []RenderChannel
	for _, ch := range channels {
		if Matches(ch, query) {
			out = append(out, ch)
		}
	}
	return out
}
