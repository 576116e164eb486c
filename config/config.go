package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	// HTTP server settings
	HTTP struct {
		Address string `yaml:"address"`
		Port    string `yaml:"port"`
	} `yaml:"http"`

	// Acestream Engine settings
	Acestream struct {
		Protocol string `yaml:"protocol"`
		Server   string `yaml:"server"`
		Acexy    bool   `yaml:"acexy"`
	} `yaml:"acestream"`

	// Cache settings for fetched playlists and guide data
	Cache struct {
		Dir string        `yaml:"dir"`
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`

	// Fetch settings
	Fetch struct {
		Timeout     time.Duration `yaml:"timeout"`
		Concurrency int           `yaml:"concurrency"`
	} `yaml:"fetch"`

	// Default playlist sources per list kind
	Sources struct {
		Direct []string `yaml:"direct"`
		Movies []string `yaml:"movies"`
		Web    []string `yaml:"web"`
	} `yaml:"sources"`

	// EPG settings
	Guide struct {
		URL string `yaml:"url"`
	} `yaml:"guide"`

	// Settings database path
	SettingsDB string `yaml:"settings_db"`

	// STRM export directory
	STRMDir string `yaml:"strm_dir"`

	// Log level (DEBUG, INFO, WARN, ERROR)
	LogLevel string `yaml:"log_level"`
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTP.Address == "" {
		errors = append(errors, "HTTP address is required")
	}
	if c.HTTP.Port == "" {
		errors = append(errors, "HTTP port is required")
	}

	if c.Acestream.Protocol != "http" && c.Acestream.Protocol != "https" {
		errors = append(errors, fmt.Sprintf("Acestream protocol must be http or https, got %q", c.Acestream.Protocol))
	}
	if c.Acestream.Server == "" {
		errors = append(errors, "Acestream server is required")
	}

	if c.Cache.Dir == "" {
		errors = append(errors, "Cache directory is required")
	}
	if c.Cache.TTL <= 0 {
		errors = append(errors, "Cache TTL must be positive")
	}

	if c.Fetch.Timeout <= 0 {
		errors = append(errors, "Fetch timeout must be positive")
	}
	if c.Fetch.Concurrency <= 0 {
		errors = append(errors, "Fetch concurrency must be positive")
	}

	if c.Guide.URL == "" {
		errors = append(errors, "Guide URL is required")
	}

	if c.SettingsDB == "" {
		errors = append(errors, "Settings database path is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.HTTP.Address = "127.0.0.1"
	cfg.HTTP.Port = "8080"

	cfg.Acestream.Protocol = "http"
	cfg.Acestream.Server = "127.0.0.1:6878"
	cfg.Acestream.Acexy = false

	cfg.Cache.Dir = "./cache"
	cfg.Cache.TTL = 1 * time.Hour

	cfg.Fetch.Timeout = 30 * time.Second
	cfg.Fetch.Concurrency = 4

	cfg.Sources.Direct = []string{
		"https://ipfs.io/ipns/k51qzi5uqu5di462t7j4vu4akwfhvtjhy88qbupktvoacqfqe9uforjvhyi4wr/hashes_acestream.m3u",
	}
	cfg.Sources.Movies = nil
	cfg.Sources.Web = nil

	cfg.Guide.URL = "https://raw.githubusercontent.com/davidmuma/EPG_dobleM/master/guiatv.xml"

	cfg.SettingsDB = "./panel.db"
	cfg.STRMDir = "./strm"
	cfg.LogLevel = "INFO"

	return cfg
}

// Load reads configuration from a YAML file, applying defaults for
// missing values and environment overrides on top
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	// Resolve relative paths so later chdirs don't move the cache
	if !filepath.IsAbs(cfg.Cache.Dir) {
		if abs, err := filepath.Abs(cfg.Cache.Dir); err == nil {
			cfg.Cache.Dir = abs
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.HTTP.Port = v
	}
	if v := os.Getenv("ACESTREAM_SERVER"); v != "" {
		cfg.Acestream.Server = v
	}
	if v := os.Getenv("ACESTREAM_PROTOCOL"); v != "" {
		cfg.Acestream.Protocol = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = ttl
		}
	}
	if v := os.Getenv("GUIDE_URL"); v != "" {
		cfg.Guide.URL = v
	}
	if v := os.Getenv("SETTINGS_DB"); v != "" {
		cfg.SettingsDB = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
