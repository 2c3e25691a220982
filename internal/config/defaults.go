package config

import (
	"time"

	"github.com/hyperjump/shohin/internal/ranking"
)

const (
	DefaultPlaceholder = "https://via.placeholder.com/150"
	DefaultSuggestions = 3
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "/usr/local/var/shohin/catalog.csv"
	}
	if cfg.Catalog.Encoding == "" {
		cfg.Catalog.Encoding = "utf-8"
	}
	if cfg.Catalog.PriceDefault == "" {
		cfg.Catalog.PriceDefault = "median"
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/shohin/data/products.db"
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 8
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 50
	}
	if cfg.Search.FuzzyThreshold == 0 {
		cfg.Search.FuzzyThreshold = 70
	}
	if cfg.Search.AccessoryKeywords == nil {
		cfg.Search.AccessoryKeywords = append([]string(nil), ranking.DefaultAccessoryKeywords...)
	}
	if cfg.Search.Suggestions == 0 {
		cfg.Search.Suggestions = DefaultSuggestions
	}
	if cfg.Image.Placeholder == "" {
		cfg.Image.Placeholder = DefaultPlaceholder
	}
	if cfg.Image.Timeout == 0 {
		cfg.Image.Timeout = 10 * time.Second
	}
	if cfg.Image.CacheSize == 0 {
		cfg.Image.CacheSize = 256
	}
	if cfg.Image.Redis.Prefix == "" {
		cfg.Image.Redis.Prefix = "shohin:image:"
	}
	if cfg.Image.Redis.TTL == 0 {
		cfg.Image.Redis.TTL = 24 * time.Hour
	}
	if cfg.Display.Columns == 0 {
		cfg.Display.Columns = 4
	}
	if cfg.Display.TitleWidth == 0 {
		cfg.Display.TitleWidth = 40
	}
	if cfg.Display.Currency == "" {
		cfg.Display.Currency = "₹"
	}
}
