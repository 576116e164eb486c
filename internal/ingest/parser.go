package ingest

import (
	"regexp"
	"strings"
)

var (
	tvgIDRegex      = regexp.MustCompile(`tvg-id="([^"]*)"`)
	tvgLogoRegex    = regexp.MustCompile(`tvg-logo="([^"]*)"`)
	groupTitleRegex = regexp.MustCompile(`group-title="([^"]*)"`)
)

// Draft is a parsed playlist entry before catalog assembly. EPGID is the
// tvg-id when the entry carries one; it is the join key into the program
// guide and falls back to the stream id when absent.
type Draft struct {
	ID    string
	EPGID string
	Name  string
	Group string
	Logo  string
	Kind  Kind
}

// acestreamIDLength is the length of an AceStream content id in hex characters.
const acestreamIDLength = 40

// isValidAcestreamID validates that a content id is exactly 40 hexadecimal characters
func isValidAcestreamID(id string) bool {
	if len(id) != acestreamIDLength {
		return false
	}
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// extractDisplayName extracts the display name from an EXTINF line.
// The display name is the text after the last comma.
func extractDisplayName(extinf string) string {
	commaIdx := strings.LastIndex(extinf, ",")
	if commaIdx == -1 {
		return ""
	}
	return strings.TrimSpace(extinf[commaIdx+1:])
}

// extractAttr returns the first capture of re in extinf, or "".
func extractAttr(re *regexp.Regexp, extinf string) string {
	matches := re.FindStringSubmatch(extinf)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// Parse parses M3U playlist text into drafts tagged with the given kind.
// It tolerates blank lines, comments, and missing optional attributes:
// a missing group-title falls back to FallbackGroup and a missing tvg-logo
// leaves Logo unset. Entries that cannot be parsed are skipped and counted.
func Parse(content []byte, kind Kind) (drafts []Draft, malformed int) {
	lines := strings.Split(string(content), "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if !strings.HasPrefix(line, "#EXTINF:") {
			// Headers, comments and blank lines are not entries.
			continue
		}

		// Find the stream URL: the next non-blank, non-comment line.
		j := i + 1
		for j < len(lines) {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				j++
				continue
			}
			break
		}
		if j >= len(lines) {
			malformed++
			break
		}

		url := strings.TrimSpace(lines[j])
		if strings.HasPrefix(url, "#") {
			// EXTINF without a URL before the next directive.
			malformed++
			continue
		}
		i = j

		draft, ok := buildDraft(line, url, kind)
		if !ok {
			malformed++
			continue
		}

		drafts = append(drafts, draft)
	}

	return drafts, malformed
}

// StreamID normalizes a stream link into the id the engine accepts.
// acestream:// URLs yield the bare 40-hex content id; plain http(s) URLs
// are stream identifiers themselves. Anything else is rejected.
func StreamID(url string) (string, bool) {
	switch {
	case strings.HasPrefix(url, "acestream://"):
		id := strings.TrimSpace(strings.TrimPrefix(url, "acestream://"))
		if !isValidAcestreamID(id) {
			return "", false
		}
		return id, true
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return url, true
	}
	return "", false
}

func buildDraft(extinf, url string, kind Kind) (Draft, bool) {
	id, ok := StreamID(url)
	if !ok {
		return Draft{}, false
	}

	name := extractDisplayName(extinf)
	if name == "" {
		return Draft{}, false
	}

	group := extractAttr(groupTitleRegex, extinf)
	if strings.TrimSpace(group) == "" {
		group = FallbackGroup
	}

	epgID := extractAttr(tvgIDRegex, extinf)
	if strings.TrimSpace(epgID) == "" {
		epgID = id
	}

	return Draft{
		ID:    id,
		EPGID: epgID,
		Name:  name,
		Group: group,
		Logo:  extractAttr(tvgLogoRegex, extinf),
		Kind:  kind,
	}, true
}
