// Package scrape extracts sports-event channel listings from supported web
// pages and turns them into web-IPTV channel drafts.
package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/alorle/acestream-panel/internal/ingest"
)

// EventChannel is one stream link offered for an event.
type EventChannel struct {
	Name string
	URL  string
}

// Event is one scraped listing: a title, its start time as shown on the
// page (HH:MM), and the channels carrying it.
type Event struct {
	League   string
	Title    string
	Time     string
	Channels []EventChannel
}

// Scraper extracts events from one site's HTML.
type Scraper interface {
	Scrape(doc *html.Node) []Event
}

// Registry maps host substrings to scrapers.
type Registry struct {
	scrapers map[string]Scraper
}

// NewRegistry returns a registry with the supported sites registered.
func NewRegistry() *Registry {
	r := &Registry{scrapers: make(map[string]Scraper)}
	r.Register("rojadirecta", &Rojadirecta{})
	r.Register("daddylive", &DaddyLive{})
	return r
}

// Register binds a scraper to a host substring.
func (r *Registry) Register(hostPattern string, s Scraper) {
	r.scrapers[hostPattern] = s
}

// For returns the scraper for a page URL, or an error when the host is not
// supported.
func (r *Registry) For(pageURL string) (Scraper, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parsing page URL: %w", err)
	}

	host := u.Hostname()
	for pattern, s := range r.scrapers {
		if strings.Contains(host, pattern) {
			return s, nil
		}
	}

	return nil, fmt.Errorf("no scraper for host %q", host)
}

// Extract parses HTML content and scrapes it with the scraper registered
// for the page URL.
func (r *Registry) Extract(pageURL string, content []byte) ([]Event, error) {
	s, err := r.For(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return s.Scrape(doc), nil
}

// ToDrafts flattens scraped events into web-IPTV channel drafts, one per
// event channel. The event title and time become the channel name; the
// source host becomes the group.
func ToDrafts(pageURL string, events []Event) []ingest.Draft {
	group := pageURL
	if u, err := url.Parse(pageURL); err == nil && u.Hostname() != "" {
		group = u.Hostname()
	}

	var drafts []ingest.Draft
	for _, ev := range events {
		for _, ch := range ev.Channels {
			// Scraped hrefs carry the same link forms as playlist
			// entries; normalize them the same way so the engine URL
			// and the dedup key match a playlist-ingested stream.
			id, ok := ingest.StreamID(ch.URL)
			if !ok {
				continue
			}
			name := ev.Title
			if ev.Time != "" {
				name = ev.Time + " " + name
			}
			if ch.Name != "" {
				name = name + " (" + ch.Name + ")"
			}
			drafts = append(drafts, ingest.Draft{
				ID:    id,
				EPGID: id,
				Name:  name,
				Group: group,
				Kind:  ingest.KindWeb,
			})
		}
	}
	return drafts
}

// walk calls fn for every node in the tree, depth-first.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// attr returns the value of an attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether a node's class attribute contains the class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// isElement reports whether a node is an element with the given tag.
func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// text returns the concatenated text content of a node's subtree.
func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return strings.TrimSpace(sb.String())
}
