package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alorle/acestream-panel/internal/catalog"
	"github.com/alorle/acestream-panel/internal/settings"
	"github.com/alorle/acestream-panel/rewriter"
)

// WriteSTRM writes one <group>/<name>.strm file per channel under dir,
// each containing the playable engine URL. Returns the number of files
// written. Channels whose file cannot be written are skipped and counted
// rather than aborting the export.
func WriteSTRM(dir string, snap *catalog.Snapshot, s settings.Settings) (written, skipped int, err error) {
	if dir == "" {
		return 0, 0, fmt.Errorf("strm directory cannot be empty")
	}

	seen := make(map[string]bool)
	for _, ch := range snap.Channels {
		groupDir := filepath.Join(dir, sanitizeName(ch.Group))
		if err := os.MkdirAll(groupDir, 0755); err != nil {
			skipped++
			continue
		}

		path := filepath.Join(groupDir, sanitizeName(ch.Name)+".strm")
		// Different names can sanitize to the same file; the first
		// channel keeps it and later collisions count as skipped.
		if seen[path] {
			skipped++
			continue
		}

		url := rewriter.StreamURL(s, ch.ID) + "\n"
		if err := os.WriteFile(path, []byte(url), 0644); err != nil {
			skipped++
			continue
		}
		seen[path] = true
		written++
	}

	return written, skipped, nil
}

// sanitizeName makes a channel or group label safe as a file name.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
	)
	out := strings.TrimSpace(replacer.Replace(name))
	if out == "" {
		out = "canal"
	}
	return out
}
