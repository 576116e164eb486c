package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for zero config")
	}

	msg := err.Error()
	for _, want := range []string{
		"HTTP address is required",
		"HTTP port is required",
		"Acestream protocol must be http or https",
		"Cache TTL must be positive",
		"Guide URL is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error missing %q in:\n%s", want, msg)
		}
	}
}

func TestValidateRejectsBadProtocol(t *testing.T) {
	cfg := Default()
	cfg.Acestream.Protocol = "ftp"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for protocol ftp")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
http:
  address: 0.0.0.0
  port: "9000"
acestream:
  protocol: https
  server: engine:6878
  acexy: true
cache:
  ttl: 30m
sources:
  direct:
    - http://example.com/a.m3u
    - http://example.com/b.m3u
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Address != "0.0.0.0" || cfg.HTTP.Port != "9000" {
		t.Errorf("http settings not loaded: %+v", cfg.HTTP)
	}
	if cfg.Acestream.Protocol != "https" || cfg.Acestream.Server != "engine:6878" || !cfg.Acestream.Acexy {
		t.Errorf("acestream settings not loaded: %+v", cfg.Acestream)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("cache TTL = %v, want 30m", cfg.Cache.TTL)
	}
	if len(cfg.Sources.Direct) != 2 {
		t.Errorf("direct sources = %v, want 2 entries", cfg.Sources.Direct)
	}
	// Defaults fill in what the file omits
	if cfg.Guide.URL == "" {
		t.Error("guide URL default not applied")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ACESTREAM_SERVER", "10.0.0.2:8621")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Acestream.Server != "10.0.0.2:8621" {
		t.Errorf("env override not applied: %s", cfg.Acestream.Server)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("log level override not applied: %s", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
