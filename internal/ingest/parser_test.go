package ingest

import (
	"strings"
	"testing"
)

const validID = "1234567890abcdef1234567890abcdef12345678"
const otherID = "abcdefabcdefabcdefabcdefabcdefabcdefabcd"

func TestParseFullEntry(t *testing.T) {
	content := `#EXTM3U
#EXTINF:-1 tvg-id="la1" tvg-logo="http://logos/la1.png" group-title="Nacionales",La 1
acestream://` + validID + `
`
	drafts, malformed := Parse([]byte(content), KindDirect)
	if malformed != 0 {
		t.Fatalf("malformed = %d, want 0", malformed)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}

	d := drafts[0]
	if d.ID != validID {
		t.Errorf("ID = %q", d.ID)
	}
	if d.EPGID != "la1" {
		t.Errorf("EPGID = %q, want la1", d.EPGID)
	}
	if d.Name != "La 1" {
		t.Errorf("Name = %q", d.Name)
	}
	if d.Group != "Nacionales" {
		t.Errorf("Group = %q", d.Group)
	}
	if d.Logo != "http://logos/la1.png" {
		t.Errorf("Logo = %q", d.Logo)
	}
	if d.Kind != KindDirect {
		t.Errorf("Kind = %q", d.Kind)
	}
}

func TestParseMissingOptionalAttributes(t *testing.T) {
	content := `#EXTINF:-1,Canal Escueto
acestream://` + validID + `
`
	drafts, malformed := Parse([]byte(content), KindDirect)
	if malformed != 0 || len(drafts) != 1 {
		t.Fatalf("got %d drafts, %d malformed", len(drafts), malformed)
	}

	d := drafts[0]
	if d.Group != FallbackGroup {
		t.Errorf("Group = %q, want fallback %q", d.Group, FallbackGroup)
	}
	if d.Logo != "" {
		t.Errorf("Logo = %q, want unset", d.Logo)
	}
	if d.EPGID != validID {
		t.Errorf("EPGID = %q, want fallback to stream id", d.EPGID)
	}
}

func TestParseToleratesBlankAndCommentLines(t *testing.T) {
	content := `#EXTM3U

# a stray comment
#EXTINF:-1 group-title="G",One

acestream://` + validID + `

#EXTINF:-1 group-title="G",Two
acestream://` + otherID + `
`
	drafts, malformed := Parse([]byte(content), KindDirect)
	if malformed != 0 {
		t.Fatalf("malformed = %d, want 0", malformed)
	}
	if len(drafts) != 2 {
		t.Fatalf("drafts = %d, want 2", len(drafts))
	}
	if drafts[0].Name != "One" || drafts[1].Name != "Two" {
		t.Errorf("ingestion order not preserved: %v", drafts)
	}
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		drafts    int
		malformed int
	}{
		{
			name:      "invalid acestream id",
			content:   "#EXTINF:-1,Bad\nacestream://tooshort\n",
			drafts:    0,
			malformed: 1,
		},
		{
			name:      "unsupported scheme",
			content:   "#EXTINF:-1,Bad\nrtmp://example.com/live\n",
			drafts:    0,
			malformed: 1,
		},
		{
			name:      "extinf without url at end of file",
			content:   "#EXTINF:-1,Dangling\n",
			drafts:    0,
			malformed: 1,
		},
		{
			name:      "extinf followed by another directive",
			content:   "#EXTINF:-1,NoURL\n#EXTINF:-1,Good\nacestream://" + validID + "\n",
			drafts:    1,
			malformed: 1,
		},
		{
			name:      "missing display name",
			content:   "#EXTINF:-1 group-title=\"G\"\nacestream://" + validID + "\n",
			drafts:    0,
			malformed: 1,
		},
		{
			name:      "bad entry does not poison the rest",
			content:   "#EXTINF:-1,Bad\nacestream://nope\n#EXTINF:-1,Good\nacestream://" + validID + "\n",
			drafts:    1,
			malformed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, malformed := Parse([]byte(tt.content), KindDirect)
			if len(drafts) != tt.drafts {
				t.Errorf("drafts = %d, want %d", len(drafts), tt.drafts)
			}
			if malformed != tt.malformed {
				t.Errorf("malformed = %d, want %d", malformed, tt.malformed)
			}
		})
	}
}

func TestParseAcceptsHTTPStreams(t *testing.T) {
	content := `#EXTINF:-1 group-title="Películas",Una Peli
https://example.com/movie.m3u8
`
	drafts, malformed := Parse([]byte(content), KindMovie)
	if malformed != 0 || len(drafts) != 1 {
		t.Fatalf("got %d drafts, %d malformed", len(drafts), malformed)
	}
	if drafts[0].ID != "https://example.com/movie.m3u8" {
		t.Errorf("ID = %q, want stream URL", drafts[0].ID)
	}
}

func TestIsValidAcestreamID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{validID, true},
		{strings.ToUpper(validID), true},
		{"short", false},
		{validID + "ff", false},
		{strings.Replace(validID, "1", "g", 1), false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isValidAcestreamID(tt.id); got != tt.want {
			t.Errorf("isValidAcestreamID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestStreamID(t *testing.T) {
	tests := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"acestream://" + validID, validID, true},
		{"http://streams.example/ch1", "http://streams.example/ch1", true},
		{"https://streams.example/ch1", "https://streams.example/ch1", true},
		{"acestream://short", "", false},
		{"ftp://streams.example/ch1", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		id, ok := StreamID(tt.url)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("StreamID(%q) = %q, %v; want %q, %v", tt.url, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
