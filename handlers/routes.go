package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all HTTP routes and handlers
func SetupRoutes(deps Dependencies) http.Handler {
	handler := http.NewServeMux()

	handler.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.Log.Error("Error writing health response", map[string]interface{}{"error": err.Error()})
		}
	})

	// Prometheus metrics endpoint
	handler.Handle("/metrics", promhttp.Handler())

	// Panel page and form submissions
	handler.HandleFunc("/", CreatePanelHandler(deps))
	handler.HandleFunc("/lists", CreateListsHandler(deps))
	handler.HandleFunc("/settings", CreateSettingsHandler(deps))

	// Downloads and exports
	handler.HandleFunc("/playlists/", CreatePlaylistHandler(deps))
	handler.HandleFunc("/export/strm", CreateSTRMHandler(deps))

	// JSON API for the channel list
	handler.HandleFunc("/api/channels", CreateChannelsAPIHandler(deps))

	return handler
}
