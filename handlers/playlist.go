package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/alorle/acestream-panel/export"
	"github.com/alorle/acestream-panel/internal/ingest"
)

// playlistKinds maps the download file name to the list it exports. The
// empty kind selects every channel regardless of origin.
var playlistKinds = map[string]ingest.Kind{
	"all.m3u":    "",
	"direct.m3u": ingest.KindDirect,
	"movies.m3u": ingest.KindMovie,
	"web.m3u":    ingest.KindWeb,
}

// CreatePlaylistHandler returns the handler for M3U playlist downloads
// under /playlists/.
func CreatePlaylistHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(r.URL.Path, "/playlists/")
		kind, ok := playlistKinds[name]
		if !ok {
			http.NotFound(w, r)
			return
		}

		s, err := deps.App.Settings(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "audio/x-mpegurl")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		if err := export.WriteM3U(w, deps.App.Snapshot(), s, kind); err != nil {
			deps.Log.Error("Writing playlist failed", map[string]interface{}{
				"playlist": name,
				"error":    err.Error(),
			})
		}
	}
}

// CreateSTRMHandler returns the handler that exports one .strm file per
// channel into the configured directory.
func CreateSTRMHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		s, err := deps.App.Settings(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if !s.ExportSTRM {
			http.Error(w, "STRM export is disabled", http.StatusConflict)
			return
		}

		written, skipped, err := export.WriteSTRM(deps.Cfg.STRMDir, deps.App.Snapshot(), s)
		if err != nil {
			deps.Log.Error("STRM export failed", map[string]interface{}{"error": err.Error()})
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		deps.Log.Info("STRM export complete", map[string]interface{}{
			"written": written,
			"skipped": skipped,
			"dir":     deps.Cfg.STRMDir,
		})

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
