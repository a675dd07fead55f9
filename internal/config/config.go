package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Comicarr server connection
	Server ServerConfig `koanf:"server"`

	// ComicVine catalog access
	ComicVine ComicVineConfig `koanf:"comicvine"`

	// UI defaults, applied when no saved settings exist yet
	UI UIConfig `koanf:"ui"`
}

// ServerConfig holds the Comicarr server connection settings.
type ServerConfig struct {
	URL    string `koanf:"url"`    // e.g., "http://localhost:8727"
	APIKey string `koanf:"apikey"` // API key from the server settings page
}

// ComicVineConfig holds ComicVine API access settings.
type ComicVineConfig struct {
	APIKey string `koanf:"apikey"`
}

// UIConfig holds default UI settings.
type UIConfig struct {
	Theme  string `koanf:"theme"`  // "dark" or "light" (default: "dark")
	Toasts *bool  `koanf:"toasts"` // show status toasts (default: true)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	return unmarshal(k)
}

// LoadFile loads configuration from a single explicit path.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize server URL (remove trailing slash)
	cfg.Server.URL = strings.TrimSuffix(cfg.Server.URL, "/")

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "dark"
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/comicarr/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "comicarr", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// HasServerConfig returns true if the Comicarr server connection is configured.
func (c *Config) HasServerConfig() bool {
	return c.Server.URL != ""
}

// HasComicVineConfig returns true if catalog access is configured.
func (c *Config) HasComicVineConfig() bool {
	return c.ComicVine.APIKey != ""
}

// ToastsEnabled returns the toast default with the nil case applied.
func (c *Config) ToastsEnabled() bool {
	if c.UI.Toasts == nil {
		return true
	}
	return *c.UI.Toasts
}
