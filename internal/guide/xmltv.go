package guide

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// XMLTV timestamp layouts, most specific first. Sources differ in how much
// precision they emit.
var timeFormats = []string{
	"20060102150405 -0700",
	"20060102150405",
	"20060102",
}

// ParseXMLTV parses an XMLTV document into guide entries. Programme elements
// with unparseable or inconsistent timestamps are skipped and counted, never
// fatal: a partially usable guide beats no guide.
func ParseXMLTV(content []byte) ([]Entry, int, error) {
	var doc tvXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, 0, fmt.Errorf("parsing XMLTV document: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Programmes))
	skipped := 0

	for _, p := range doc.Programmes {
		start, err := parseXMLTVTime(p.Start)
		if err != nil {
			skipped++
			continue
		}
		stop, err := parseXMLTVTime(p.Stop)
		if err != nil {
			skipped++
			continue
		}
		if p.Channel == "" || !stop.After(start) {
			skipped++
			continue
		}

		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = "Sin título"
		}

		entries = append(entries, Entry{
			ChannelID: p.Channel,
			Title:     title,
			Start:     start,
			Stop:      stop,
		})
	}

	return entries, skipped, nil
}

func parseXMLTVTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	var lastErr error
	for _, format := range timeFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// tvXML represents the root element of an XMLTV file.
type tvXML struct {
	XMLName    xml.Name       `xml:"tv"`
	Programmes []programmeXML `xml:"programme"`
}

// programmeXML represents a programme element in an XMLTV file.
type programmeXML struct {
	Channel string `xml:"channel,attr"`
	Start   string `xml:"start,attr"`
	Stop    string `xml:"stop,attr"`
	Title   string `xml:"title"`
}
