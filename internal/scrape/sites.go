package scrape

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var timePattern = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)

// Rojadirecta scrapes the agenda page: one li per event under ul.menu,
// with the league in the li class, the start time in a span.t, and the
// channels in nested li.subitem1 links.
type Rojadirecta struct{}

func (Rojadirecta) Scrape(doc *html.Node) []Event {
	var events []Event

	walk(doc, func(n *html.Node) {
		if !isElement(n, "ul") || !hasClass(n, "menu") {
			return
		}

		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if !isElement(li, "li") {
				continue
			}
			if ev, ok := scrapeRojaItem(li); ok {
				events = append(events, ev)
			}
		}
	})

	return events
}

func scrapeRojaItem(li *html.Node) (Event, bool) {
	ev := Event{}
	if classes := strings.Fields(attr(li, "class")); len(classes) > 0 {
		ev.League = classes[0]
	}

	var link *html.Node
	walk(li, func(n *html.Node) {
		if link == nil && isElement(n, "a") {
			link = n
		}
	})
	if link == nil {
		return Event{}, false
	}

	title := text(link)

	// The start time sits in a span.t inside the link; strip it from
	// the title once found.
	walk(link, func(n *html.Node) {
		if isElement(n, "span") && hasClass(n, "t") {
			ev.Time = text(n)
		}
	})
	if ev.Time != "" {
		title = strings.TrimSpace(strings.Replace(title, ev.Time, "", 1))
	}
	ev.Title = title

	walk(li, func(n *html.Node) {
		if !isElement(n, "li") || !hasClass(n, "subitem1") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isElement(c, "a") {
				ev.Channels = append(ev.Channels, EventChannel{
					Name: text(c),
					URL:  attr(c, "href"),
				})
			}
		}
	})

	if ev.Title == "" {
		return Event{}, false
	}
	return ev, true
}

// DaddyLive scrapes the schedule page: every strong element that carries an
// HH:MM time holds one event, with the channels as links inside it.
type DaddyLive struct{}

func (DaddyLive) Scrape(doc *html.Node) []Event {
	var events []Event

	walk(doc, func(n *html.Node) {
		if !isElement(n, "strong") {
			return
		}

		full := text(n)
		match := timePattern.FindString(full)
		if match == "" {
			return
		}

		ev := Event{Time: match}

		walk(n, func(c *html.Node) {
			if isElement(c, "a") {
				ev.Channels = append(ev.Channels, EventChannel{
					Name: text(c),
					URL:  attr(c, "href"),
				})
			}
		})

		// The title is what sits between the time and the first
		// channel label.
		title := full
		if idx := strings.Index(title, match); idx != -1 {
			title = title[idx+len(match):]
		}
		if len(ev.Channels) > 0 {
			if idx := strings.Index(title, ev.Channels[0].Name); idx != -1 {
				title = title[:idx]
			}
		}
		ev.Title = strings.TrimSpace(title)

		if ev.Title != "" {
			events = append(events, ev)
		}
	})

	return events
}
