package present

import (
	"reflect"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		text string
		want FormState
	}{
		{"empty string", "", StateEmpty},
		{"whitespace only", "  \n\t  \n", StateEmpty},
		{"single url", "http://example.com/list.m3u", StateLoaded},
		{"url with surrounding whitespace", "\n  http://example.com/list.m3u  \n", StateLoaded},
		{"single character", "x", StateLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.text); got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEvalTransitionsAreReversible(t *testing.T) {
	// Empty -> Loaded -> Empty under typing and deleting must restore
	// the exact same state and visibility set.
	if Eval("") != StateEmpty {
		t.Fatal("initial state should be Empty")
	}
	if Eval("http://example.com/a.m3u") != StateLoaded {
		t.Fatal("non-blank input should load")
	}
	if Eval("   ") != StateEmpty {
		t.Fatal("re-emptied textarea should restore Empty")
	}
	if ControlsFor(Eval("")) != ControlsFor(StateEmpty) {
		t.Error("visibility after re-emptying differs from the initial one")
	}
}

func TestEvalIdempotent(t *testing.T) {
	for _, text := range []string{"", "   ", "http://example.com/a.m3u"} {
		first := Eval(text)
		for i := 0; i < 3; i++ {
			if got := Eval(text); got != first {
				t.Errorf("Eval(%q) unstable: %v then %v", text, first, got)
			}
		}
	}
}

func TestControlsFor(t *testing.T) {
	empty := ControlsFor(StateEmpty)
	if !empty.DefaultListButton || empty.DownloadButtons || empty.SearchBox {
		t.Errorf("Empty state controls = %+v", empty)
	}

	loaded := ControlsFor(StateLoaded)
	if loaded.DefaultListButton || !loaded.DownloadButtons || !loaded.SearchBox {
		t.Errorf("Loaded state controls = %+v", loaded)
	}
}

func TestMatches(t *testing.T) {
	ch := RenderChannel{Name: "News24", CurrentProgram: "Morning Briefing"}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"new", true},
		{"NEWS24", true},
		{"briefing", true},
		{"MORNING", true},
		{"sports", false},
	}

	for _, tt := range tests {
		if got := Matches(ch, tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFilterPreservesOrderAndRestores(t *testing.T) {
	channels := []RenderChannel{
		{Name: "News24"},
		{Name: "Sports1"},
		{Name: "Newsroom"},
	}

	got := Filter(channels, "new")
	if len(got) != 2 || got[0].Name != "News24" || got[1].Name != "Newsroom" {
		t.Errorf("Filter(new) = %v", got)
	}

	// Clearing the query restores the exact original slice.
	restored := Filter(channels, "")
	if !reflect.DeepEqual(restored, channels) {
		t.Errorf("clearing query should restore full list, got %v", restored)
	}

	// Filtering never mutated the underlying list.
	if channels[1].Name != "Sports1" {
		t.Error("filter mutated the input")
	}
}
