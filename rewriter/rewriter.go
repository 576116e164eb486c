// Package rewriter builds playable engine URLs from the configured
// AceStream address and rewrites acestream:// lines in exported playlists.
package rewriter

import (
	"fmt"
	"strings"

	"github.com/alorle/acestream-panel/internal/settings"
)

// StreamURL returns the engine URL that plays the given stream id.
// Plain HTTP(S) stream ids pass through untouched.
func StreamURL(s settings.Settings, id string) string {
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	return fmt.Sprintf("%s://%s/ace/getstream?id=%s", s.Protocol, s.Server, id)
}

// PlayerURL returns the URL the embedded HLS player should load. The plain
// engine exposes an HLS manifest; Acexy only fronts the getstream endpoint.
func PlayerURL(s settings.Settings, id string) string {
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	if s.ConAcexy {
		return StreamURL(s, id)
	}
	return fmt.Sprintf("%s://%s/ace/manifest.m3u8?id=%s", s.Protocol, s.Server, id)
}

// RewriteM3U rewrites every acestream:// URL line in an M3U document into a
// playable engine link. All other lines pass through unchanged.
func RewriteM3U(s settings.Settings, content []byte) []byte {
	lines := strings.Split(string(content), "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "acestream://") {
			continue
		}
		id := strings.TrimPrefix(trimmed, "acestream://")
		lines[i] = StreamURL(s, id)
	}

	return []byte(strings.Join(lines, "\n"))
}
