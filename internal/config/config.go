// Package config provides configuration loading and structs for the shohin server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Storage StorageConfig `yaml:"storage"`
	Search  SearchConfig  `yaml:"search"`
	Image   ImageConfig   `yaml:"image"`
	Display DisplayConfig `yaml:"display"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig describes the product catalog source.
type CatalogConfig struct {
	// Path to a .csv, .xlsx, or imported .db catalog.
	Path     string `yaml:"path"`
	Encoding string `yaml:"encoding"`
	// PriceDefault is "median" or "zero": the price given to rows without a valid one.
	PriceDefault string `yaml:"price_default"`
	// Watch reloads the catalog when the file changes.
	Watch bool `yaml:"watch"`
}

// StorageConfig holds the SQLite database path used by import.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// SearchConfig holds match-and-rank settings.
type SearchConfig struct {
	DefaultLimit      int      `yaml:"default_limit"`
	MaxLimit          int      `yaml:"max_limit"`
	FuzzyThreshold    float64  `yaml:"fuzzy_threshold"`
	AccessoryKeywords []string `yaml:"accessory_keywords"`
	// Suggestions is how many "did you mean" queries to offer on no match.
	// Zero selects the default; negative disables suggestions.
	Suggestions int `yaml:"suggestions"`
}

// ImageConfig holds image resolution and caching settings.
type ImageConfig struct {
	Placeholder string        `yaml:"placeholder"`
	Timeout     time.Duration `yaml:"timeout"`
	CacheSize   int           `yaml:"cache_size"`
	Redis       RedisConfig   `yaml:"redis"`
}

// RedisConfig enables the shared Redis image cache when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// DisplayConfig controls CLI result rendering.
type DisplayConfig struct {
	Columns    int    `yaml:"columns"`
	TitleWidth int    `yaml:"title_width"`
	Currency   string `yaml:"currency"`
}

// Load reads and parses the config file at path, expands paths, applies defaults,
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path, configDir)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.Catalog.PriceDefault {
	case "median", "zero":
	default:
		return fmt.Errorf("catalog.price_default must be median or zero, got %q", c.Catalog.PriceDefault)
	}
	if c.Search.FuzzyThreshold < 0 || c.Search.FuzzyThreshold > 100 {
		return fmt.Errorf("search.fuzzy_threshold must be within 0-100, got %v", c.Search.FuzzyThreshold)
	}
	if c.Search.DefaultLimit < 0 || c.Search.MaxLimit < c.Search.DefaultLimit {
		return fmt.Errorf("search.max_limit (%d) must be >= default_limit (%d)", c.Search.MaxLimit, c.Search.DefaultLimit)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory. Empty paths stay empty.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
