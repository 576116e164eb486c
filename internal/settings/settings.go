// Package settings holds the user-editable panel settings: the engine
// address, the export flags, and the three raw source lists.
package settings

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validation errors surfaced to the user at save time.
var (
	ErrInvalidProtocol = errors.New("protocol must be http or https")
	ErrInvalidServer   = errors.New("server must be a host:port address")
)

// Settings is an immutable value passed explicitly to every component that
// needs it. A failed save never mutates the previously valid value.
type Settings struct {
	Protocol   string
	Server     string
	ConAcexy   bool
	ExportSTRM bool

	// Raw textarea contents, one URL per line, echoed back to the form
	// verbatim.
	DirectSources string
	MovieSources  string
	WebSources    string
}

// Default returns the settings used before the user saves anything.
func Default() Settings {
	return Settings{
		Protocol: "http",
		Server:   "127.0.0.1:6878",
	}
}

// Validate checks the engine address fields. Source lists are free-form:
// unreachable URLs are an ingestion concern, not a validation one.
func (s Settings) Validate() error {
	if s.Protocol != "http" && s.Protocol != "https" {
		return fmt.Errorf("%w: got %q", ErrInvalidProtocol, s.Protocol)
	}

	host, port, err := net.SplitHostPort(s.Server)
	if err != nil || host == "" || port == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidServer, s.Server)
	}

	return nil
}

// SourceURLs splits a raw textarea value into its non-blank lines.
func SourceURLs(raw string) []string {
	var urls []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
