// Package present maps catalog snapshots into the render contract the page
// template consumes, and models the client-side form state machine so it
// can be tested without a browser.
package present

import (
	"github.com/alorle/acestream-panel/internal/catalog"
	"github.com/alorle/acestream-panel/internal/settings"
	"github.com/alorle/acestream-panel/rewriter"
)

// RenderChannel is one channel as the template sees it. All guide logic has
// already happened; the template only reads fields.
type RenderChannel struct {
	ID                 string
	Group              string
	Name               string
	Logo               string
	Kind               string
	CurrentProgram     string
	CurrentProgramTime string
	NextProgram        string
	NextProgramTime    string
	PlayerURL          string
}

// Page is the full render contract for the panel page.
type Page struct {
	Groups   []string
	Channels []RenderChannel

	Protocol   string
	Server     string
	ConAcexy   bool
	ExportSTRM bool

	DirectSources string
	MovieSources  string
	WebSources    string

	// DefaultSourceURL backs the button shown while no sources are
	// configured yet. Render leaves it empty; the handler fills it in
	// from configuration.
	DefaultSourceURL string

	SourcesSkipped int
	Malformed      int
}

// Render maps a snapshot and the current settings into the page contract.
// Every channel's group is guaranteed to appear in Groups because the
// snapshot was built that way; Render adds nothing and drops nothing.
func Render(snap *catalog.Snapshot, s settings.Settings) Page {
	page := Page{
		Groups:         snap.Groups,
		Channels:       make([]RenderChannel, 0, len(snap.Channels)),
		Protocol:       s.Protocol,
		Server:         s.Server,
		ConAcexy:       s.ConAcexy,
		ExportSTRM:     s.ExportSTRM,
		DirectSources:  s.DirectSources,
		MovieSources:   s.MovieSources,
		WebSources:     s.WebSources,
		SourcesSkipped: snap.Stats.SourcesSkipped,
		Malformed:      snap.Stats.Malformed,
	}

	for _, ch := range snap.Channels {
		page.Channels = append(page.Channels, RenderChannel{
			ID:                 ch.ID,
			Group:              ch.Group,
			Name:               ch.Name,
			Logo:               ch.Logo,
			Kind:               string(ch.Kind),
			CurrentProgram:     ch.Current,
			CurrentProgramTime: ch.CurrentTime,
			NextProgram:        ch.Next,
			NextProgramTime:    ch.NextTime,
			PlayerURL:          rewriter.PlayerURL(s, ch.ID),
		})
	}

	return page
}
