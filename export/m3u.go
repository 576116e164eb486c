// Package export writes catalog snapshots out as downloadable playlists
// and STRM trees for media-center software.
package export

import (
	"fmt"
	"io"

	"github.com/alorle/acestream-panel/internal/catalog"
	"github.com/alorle/acestream-panel/internal/ingest"
	"github.com/alorle/acestream-panel/internal/settings"
	"github.com/alorle/acestream-panel/rewriter"
)

// WriteM3U writes a snapshot as an M3U playlist with playable engine URLs.
// When kind is non-empty only channels from that list are written.
func WriteM3U(w io.Writer, snap *catalog.Snapshot, s settings.Settings, kind ingest.Kind) error {
	if _, err := fmt.Fprintf(w, "#EXTM3U\n"); err != nil {
		return err
	}

	for _, ch := range snap.Channels {
		if kind != "" && ch.Kind != kind {
			continue
		}
		if err := writeChannel(w, ch, s); err != nil {
			return err
		}
	}

	return nil
}

func writeChannel(w io.Writer, ch catalog.Channel, s settings.Settings) error {
	if _, err := fmt.Fprintf(w, "#EXTINF:-1"); err != nil {
		return err
	}

	if ch.EPGID != "" && ch.EPGID != ch.ID {
		if _, err := fmt.Fprintf(w, " tvg-id=%q", ch.EPGID); err != nil {
			return err
		}
	}
	if ch.Logo != "" {
		if _, err := fmt.Fprintf(w, " tvg-logo=%q", ch.Logo); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, " group-title=%q", ch.Group); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, ",%s\n%s\n", ch.Name, rewriter.StreamURL(s, ch.ID))
	return err
}
