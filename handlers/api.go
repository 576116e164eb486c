package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alorle/acestream-panel/present"
)

type channelJSON struct {
	ID                 string `json:"id"`
	Group              string `json:"group"`
	Name               string `json:"name"`
	Logo               string `json:"logo,omitempty"`
	Kind               string `json:"kind"`
	CurrentProgram     string `json:"current_program,omitempty"`
	CurrentProgramTime string `json:"current_program_time,omitempty"`
	NextProgram        string `json:"next_program,omitempty"`
	NextProgramTime    string `json:"next_program_time,omitempty"`
	PlayerURL          string `json:"player_url"`
}

type channelsResponse struct {
	SnapshotID string        `json:"snapshot_id"`
	BuiltAt    string        `json:"built_at"`
	Groups     []string      `json:"groups"`
	Channels   []channelJSON `json:"channels"`
}

// CreateChannelsAPIHandler returns the JSON listing of the current
// snapshot. The optional q parameter applies the same search the page
// uses: case-insensitive substring over name and current program.
func CreateChannelsAPIHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		s, err := deps.App.Settings(r.Context())
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		snap := deps.App.Snapshot()
		page := present.Render(snap, s)
		channels := present.Filter(page.Channels, r.URL.Query().Get("q"))

		resp := channelsResponse{
			SnapshotID: snap.ID,
			BuiltAt:    snap.BuiltAt.Format(time.RFC3339),
			Groups:     page.Groups,
			Channels:   make([]channelJSON, 0, len(channels)),
		}
		for _, ch := range channels {
			resp.Channels = append(resp.Channels, channelJSON{
				ID:                 ch.ID,
				Group:              ch.Group,
				Name:               ch.Name,
				Logo:               ch.Logo,
				Kind:               ch.Kind,
				CurrentProgram:     ch.CurrentProgram,
				CurrentProgramTime: ch.CurrentProgramTime,
				NextProgram:        ch.NextProgram,
				NextProgramTime:    ch.NextProgramTime,
				PlayerURL:          ch.PlayerURL,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			deps.Log.Error("Encoding channels response failed", map[string]interface{}{"error": err.Error()})
		}
	}
}
