package settings

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr error
	}{
		{"default is valid", Default(), nil},
		{"https accepted", Settings{Protocol: "https", Server: "engine:6878"}, nil},
		{"bad protocol", Settings{Protocol: "ftp", Server: "engine:6878"}, ErrInvalidProtocol},
		{"empty protocol", Settings{Server: "engine:6878"}, ErrInvalidProtocol},
		{"missing port", Settings{Protocol: "http", Server: "engine"}, ErrInvalidServer},
		{"missing host", Settings{Protocol: "http", Server: ":6878"}, ErrInvalidServer},
		{"empty server", Settings{Protocol: "http"}, ErrInvalidServer},
		{"ipv6 server", Settings{Protocol: "http", Server: "[::1]:6878"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSourceURLs(t *testing.T) {
	raw := "http://a.example/list.m3u\n\n  http://b.example/list.m3u  \n# commented out\n"
	got := SourceURLs(raw)
	want := []string{"http://a.example/list.m3u", "http://b.example/list.m3u"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SourceURLs = %v, want %v", got, want)
	}

	if urls := SourceURLs("   \n\n"); urls != nil {
		t.Errorf("whitespace-only input should yield no URLs, got %v", urls)
	}
}
