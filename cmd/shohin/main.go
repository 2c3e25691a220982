// Package main is the shohin CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/hyperjump/shohin/internal/catalog"
	"github.com/hyperjump/shohin/internal/cli"
	"github.com/hyperjump/shohin/internal/config"
	"github.com/hyperjump/shohin/internal/image"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/internal/search"
	"github.com/hyperjump/shohin/internal/server"
	"github.com/hyperjump/shohin/internal/storage"
	"github.com/hyperjump/shohin/internal/watcher"
	"github.com/hyperjump/shohin/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/shohin/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "import":
		runImport()
	case "status":
		runStatus()
	case "init":
		runInit()
	case "version", "--version", "-v":
		fmt.Printf("shohin version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	catalogPath := fs.String("catalog", "", "catalog file (overrides catalog.path)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("catalog", cfg.Catalog.Path),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalog.Watch {
		reload := newCatalogReloader(components.Store, catalogLoadOptions(cfg, logger), logger)
		watchSvc := watcher.NewWatcher(cfg.Catalog.Path, reload, watcher.WithLogger(logger))
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start catalog watcher", zap.Error(err))
		}
		defer watchSvc.Stop()
	}

	srv := server.NewServer(components.Engine, components.Store, components.Images, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printSearchUsage prints search subcommand usage.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: shohin search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Products whose name or brand contains the query are listed first by relevance
(brand match, then non-accessory items), then by price. When nothing contains
the query, the closest product name is used if it is similar enough.

Examples:
  shohin search samsung
  shohin search "galaxy s21"
  shohin search --output compact iphne          # typo still finds the iPhone
  shohin search --server http://localhost:8080 --limit 4 kettle
`)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves flags (and their values) to the front of the slice so
// that flag.Parse() sees them. Go's flag package stops at the first non-flag
// argument, so "shohin search samsung -limit 4" would otherwise leave -limit
// unparsed. Query words keep their relative order: "galaxy -limit 4 s21" is
// still the query "galaxy s21". Anything after "--" is query text.
func searchArgsReorder(fs *flag.FlagSet, args []string) []string {
	flags := make([]string, 0, len(args))
	positional := make([]string, 0, len(args))
	terminated := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			terminated = true
			break
		}
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	if terminated {
		flags = append(flags, "--")
	}
	return append(flags, positional...)
}

func isBoolFlag(f *flag.Flag) bool {
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// searchOptions holds the parsed search flags.
type searchOptions struct {
	configPath   *string
	serverURL    *string
	catalogPath  *string
	limit        *int
	outputFormat *string
	showImages   *bool
}

func newSearchFlags() (*flag.FlagSet, *searchOptions) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	opts := &searchOptions{
		configPath:   fs.String("config", defaultConfigPath, "config file path"),
		serverURL:    fs.String("server", "", "server URL (empty = load the catalog directly)"),
		catalogPath:  fs.String("catalog", "", "catalog file (overrides catalog.path)"),
		limit:        fs.Int("limit", 0, "maximum number of results (0 = search.default_limit)"),
		outputFormat: fs.String("output", "text", "output format: text (grid), compact (one result per line), or json"),
		showImages:   fs.Bool("images", false, "list the resolved image URL of each result"),
	}
	fs.Usage = func() { printSearchUsage(fs) }
	return fs, opts
}

func runSearch() {
	fs, opts := newSearchFlags()
	_ = fs.Parse(searchArgsReorder(fs, os.Args[2:]))

	if fs.NArg() < 1 {
		printSearchUsage(fs)
		os.Exit(1)
	}

	format := cli.ParseFormat(*opts.outputFormat)
	if string(format) != strings.ToLower(strings.TrimSpace(*opts.outputFormat)) {
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text, compact, or json\n", *opts.outputFormat)
		os.Exit(1)
	}

	cfg, _, err := loadConfig(*opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *opts.catalogPath != "" {
		cfg.Catalog.Path = *opts.catalogPath
	}
	display := displayOptions(cfg, *opts.showImages)
	searchQuery := &models.SearchQuery{Query: buildSearchQuery(fs.Args()), Limit: *opts.limit}

	if *opts.serverURL != "" {
		response, err := searchViaHTTP(*opts.serverURL, searchQuery)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteSearchResults(os.Stdout, response, format, display); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	c, err := catalog.Load(cfg.Catalog.Path, catalogLoadOptions(cfg, logger))
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}
	engine := search.NewEngine(catalog.NewMemoryStore(c), &cfg.Search, search.WithLogger(logger))
	response, err := engine.Search(context.Background(), searchQuery)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format, display); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func searchViaHTTP(serverURL string, query *models.SearchQuery) (*models.SearchResponse, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(strings.TrimRight(serverURL, "/")+"/api/v1/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var response models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

func displayOptions(cfg *config.Config, showImages bool) cli.DisplayOptions {
	opts := cli.DisplayOptions{
		Columns:    cfg.Display.Columns,
		TitleWidth: cfg.Display.TitleWidth,
		Currency:   cfg.Display.Currency,
	}
	if showImages {
		opts.Images = image.NewResolver(cfg.Image.Placeholder)
	}
	return opts
}

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	dbPath := fs.String("db", "", "SQLite database to write (default: storage.database_path)")
	encoding := fs.String("encoding", "", "CSV encoding (default: catalog.encoding)")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	source := cfg.Catalog.Path
	if fs.NArg() > 0 {
		source = fs.Arg(0)
	}
	if *dbPath != "" {
		cfg.Storage.DatabasePath = *dbPath
	}
	if *encoding != "" {
		cfg.Catalog.Encoding = *encoding
	}

	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	c, err := catalog.Load(source, catalogLoadOptions(cfg, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ReplaceProducts(context.Background(), c.Products()); err != nil {
		fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	stats := c.Stats()
	fmt.Printf("Imported %d products from %s into %s\n", c.Len(), source, cfg.Storage.DatabasePath)
	fmt.Printf("rows_read:       %d\n", stats.RowsRead)
	fmt.Printf("empty_names:     %d   # rows dropped\n", stats.EmptyNames)
	fmt.Printf("duplicates:      %d   # later rows with a repeated name\n", stats.Duplicates)
	fmt.Printf("prices_imputed:  %d   # set to %s\n", stats.PricesImputed, utils.GroupThousands(stats.ImputedPrice))
}

// statusConfigResponse holds configuration info returned by status.
type statusConfigResponse struct {
	DefaultLimit   int     `json:"default_limit"`
	MaxLimit       int     `json:"max_limit"`
	FuzzyThreshold float64 `json:"fuzzy_threshold"`
	CatalogPath    string  `json:"catalog_path,omitempty"`
	CatalogWatch   bool    `json:"catalog_watch"`
	DatabasePath   string  `json:"database_path,omitempty"`
	ImageCache     string  `json:"image_cache,omitempty"`
}

// statusResponse is the shape of GET /api/v1/status response.
type statusResponse struct {
	Products       int                   `json:"products"`
	CatalogSource  string                `json:"catalog_source"`
	LoadedAt       string                `json:"loaded_at,omitempty"`
	Cleaning       *catalog.Stats        `json:"cleaning,omitempty"`
	UptimeSeconds  *int64                `json:"uptime_seconds,omitempty"`
	DiskUsageBytes *int64                `json:"disk_usage_bytes,omitempty"`
	Config         *statusConfigResponse `json:"config,omitempty"`
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = load the catalog directly)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status *statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Status failed: %v\n", err)
			os.Exit(1)
		}
		status = res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		c, err := catalog.Load(cfg.Catalog.Path, catalogLoadOptions(cfg, logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
		status = localStatus(cfg, c)
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		writeStatusText(os.Stdout, status)
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func localStatus(cfg *config.Config, c *catalog.Catalog) *statusResponse {
	stats := c.Stats()
	status := &statusResponse{
		Products:      c.Len(),
		CatalogSource: c.Source(),
		LoadedAt:      c.LoadedAt().Format(time.RFC3339),
		Cleaning:      &stats,
		Config: &statusConfigResponse{
			DefaultLimit:   cfg.Search.DefaultLimit,
			MaxLimit:       cfg.Search.MaxLimit,
			FuzzyThreshold: cfg.Search.FuzzyThreshold,
			CatalogPath:    cfg.Catalog.Path,
			CatalogWatch:   cfg.Catalog.Watch,
			DatabasePath:   cfg.Storage.DatabasePath,
		},
	}
	if diskBytes, err := storage.DiskUsageBytes(cfg.Catalog.Path, cfg.Storage.DatabasePath); err == nil {
		status.DiskUsageBytes = &diskBytes
	}
	return status
}

func writeStatusText(w io.Writer, status *statusResponse) {
	fmt.Fprintf(w, "products:           %d   # products in the loaded catalog\n", status.Products)
	fmt.Fprintf(w, "catalog_source:     %s\n", status.CatalogSource)
	if status.LoadedAt != "" {
		fmt.Fprintf(w, "loaded_at:          %s\n", status.LoadedAt)
	}
	if status.UptimeSeconds != nil {
		fmt.Fprintf(w, "uptime_seconds:     %d\n", *status.UptimeSeconds)
	}
	if status.DiskUsageBytes != nil {
		fmt.Fprintf(w, "disk_usage_bytes:   %d   # catalog file + database on disk\n", *status.DiskUsageBytes)
	}
	if s := status.Cleaning; s != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "# cleaning")
		fmt.Fprintf(w, "rows_read:          %d\n", s.RowsRead)
		fmt.Fprintf(w, "empty_names:        %d\n", s.EmptyNames)
		fmt.Fprintf(w, "duplicates:         %d\n", s.Duplicates)
		fmt.Fprintf(w, "prices_imputed:     %d\n", s.PricesImputed)
	}
	if c := status.Config; c != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "# configuration")
		fmt.Fprintf(w, "default_limit:      %d\n", c.DefaultLimit)
		fmt.Fprintf(w, "max_limit:          %d\n", c.MaxLimit)
		fmt.Fprintf(w, "fuzzy_threshold:    %g\n", c.FuzzyThreshold)
		if c.CatalogPath != "" {
			fmt.Fprintf(w, "catalog_path:       %s\n", c.CatalogPath)
		}
		fmt.Fprintf(w, "catalog_watch:      %t\n", c.CatalogWatch)
		if c.DatabasePath != "" {
			fmt.Fprintf(w, "database_path:      %s\n", c.DatabasePath)
		}
		if c.ImageCache != "" {
			fmt.Fprintf(w, "image_cache:        %s\n", c.ImageCache)
		}
	}
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(strings.TrimRight(serverURL, "/") + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var out statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func runInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file to create")
	force := fs.Bool("force", false, "overwrite an existing config file")
	_ = fs.Parse(os.Args[2:])

	if _, err := os.Stat(*configPath); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s already exists; use --force to overwrite\n", *configPath)
		os.Exit(1)
	}
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	if err := config.Save(*configPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", *configPath)
}

// newCatalogReloader returns a watcher callback that reloads the catalog into
// store. Reloads run one at a time so a slow read of an older file cannot
// replace a newer snapshot.
func newCatalogReloader(store *catalog.MemoryStore, opts catalog.LoadOptions, logger *zap.Logger) func(path string) {
	var mu sync.Mutex
	return func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if err := store.ReloadFrom(path, opts); err != nil {
			logger.Warn("catalog reload failed, keeping previous catalog", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("catalog reloaded", zap.String("path", path), zap.Int("products", store.Catalog().Len()))
	}
}

func catalogLoadOptions(cfg *config.Config, logger *zap.Logger) catalog.LoadOptions {
	return catalog.LoadOptions{
		Encoding:    cfg.Catalog.Encoding,
		PricePolicy: catalog.PricePolicy(cfg.Catalog.PriceDefault),
		Logger:      logger,
	}
}

// Components holds the long-lived pieces the server runs on.
type Components struct {
	Store      *catalog.MemoryStore
	Engine     *search.Engine
	Images     *image.Fetcher
	ImageCache image.Cache
}

// Close releases the image cache.
func (c *Components) Close() {
	if c.ImageCache != nil {
		_ = c.ImageCache.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	c, err := catalog.Load(cfg.Catalog.Path, catalogLoadOptions(cfg, logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	store := catalog.NewMemoryStore(c)
	engine := search.NewEngine(store, &cfg.Search, search.WithLogger(logger))

	cache := newImageCache(cfg, logger)
	fetcher := image.NewFetcher(
		image.NewResolver(cfg.Image.Placeholder),
		image.WithCache(cache),
		image.WithTimeout(cfg.Image.Timeout),
		image.WithLogger(logger),
	)

	return &Components{
		Store:      store,
		Engine:     engine,
		Images:     fetcher,
		ImageCache: cache,
	}, nil
}

// newImageCache returns the Redis cache when configured and reachable, else an
// in-memory LRU.
func newImageCache(cfg *config.Config, logger *zap.Logger) image.Cache {
	if cfg.Image.Redis.Enabled() {
		r := cfg.Image.Redis
		cache, err := image.NewRedisCache(image.RedisConfig{
			Addr:     r.Addr,
			Password: r.Password,
			DB:       r.DB,
			Prefix:   r.Prefix,
			TTL:      r.TTL,
		})
		if err == nil {
			logger.Info("image cache initialized", zap.String("type", "redis"), zap.String("addr", r.Addr))
			return cache
		}
		logger.Warn("redis image cache unavailable, falling back to memory", zap.String("addr", r.Addr), zap.Error(err))
	}
	return image.NewMemoryCache(cfg.Image.CacheSize)
}

func printUsage() {
	fmt.Println(`shohin - Interactive product catalog search

Usage:
  shohin server [flags]            Start the HTTP server
  shohin search [flags] <query>    Search products
  shohin import [flags] [file]     Load a CSV/XLSX catalog into the SQLite database
  shohin status [flags]            Show catalog and configuration status
  shohin init [flags]              Write a default config file
  shohin version                   Show version
  shohin help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/shohin/config.yaml)
  --catalog string   Catalog file (overrides catalog.path)
  --debug            Enable debug logging

Search Flags:
  --config string    Config file path
  --server string    Server URL. Empty (default) loads the catalog directly.
  --catalog string   Catalog file (overrides catalog.path)
  --limit int        Maximum number of results (default: search.default_limit, 8)
  --output string    Output format: text, compact, or json (default: text)
  --images           List the resolved image URL of each result

Import Flags:
  --config string    Config file path
  --db string        SQLite database to write (default: storage.database_path)
  --encoding string  CSV encoding: utf-8, latin-1, windows-1252

Status Flags:
  --config string    Config file path (for direct mode)
  --server string    Server URL. Empty (default) loads the catalog directly.
  --output string    Output format: text or json (default: text)

Init Flags:
  --config string    Config file to create
  --force            Overwrite an existing file

Examples:
  shohin init --config ./config.yaml
  shohin import --encoding latin-1 products.csv
  shohin server --catalog /usr/local/var/shohin/data/products.db
  shohin search samsung galaxy
  shohin search --output json "usb cable"
  shohin status --server http://localhost:8080`)
}
