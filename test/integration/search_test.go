// Package integration provides end-to-end tests (requires real storage and HTTP stack).
package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperjump/shohin/internal/catalog"
	"github.com/hyperjump/shohin/internal/config"
	"github.com/hyperjump/shohin/internal/image"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/internal/search"
	"github.com/hyperjump/shohin/internal/server"
	"github.com/hyperjump/shohin/internal/storage"
)

const productsCSV = `uniq_id,product_name,brand,retail_price,image
1,Apple iPhone 12,Apple,"79,999","[""http://img.example.com/iphone.jpg"", ""http://img.example.com/iphone2.jpg""]"
2,Apple Lightning USB Cable,Apple,1900,
3,Samsung Galaxy S21,Samsung,69999,http://img.example.com/s21.jpg
4,Samsung Galaxy S21,Samsung,1,
5,,Nobody,10,
6,Tempered Glass for Galaxy S21,,299,
7,Electric Kettle,Prestige,,
`

func TestIntegration_ImportAndSearch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "products.csv")
	if err := os.WriteFile(csvPath, []byte(productsCSV), 0600); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Catalog.Path = csvPath
	cfg.Storage.DatabasePath = filepath.Join(dir, "products.db")

	loaded, err := catalog.Load(csvPath, catalog.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 5 {
		t.Fatalf("expected 5 cleaned products, got %d", loaded.Len())
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := store.ReplaceProducts(ctx, loaded.Products()); err != nil {
		t.Fatal(err)
	}
	_ = store.Close()

	// Serve from the imported database.
	imported, err := catalog.Load(cfg.Storage.DatabasePath, catalog.LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	memStore := catalog.NewMemoryStore(imported)
	engine := search.NewEngine(memStore, &cfg.Search)

	resp, err := engine.Search(ctx, &models.SearchQuery{Query: "galaxy"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Status != models.StatusOK || resp.Total != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[0].Product.Name != "Samsung Galaxy S21" || resp.Results[0].Product.Price != 69999 {
		t.Errorf("first result = %+v", resp.Results[0].Product)
	}
	if resp.Results[1].Product.Brand != "unknown" {
		t.Errorf("brandless row should default to unknown, got %q", resp.Results[1].Product.Brand)
	}

	fetcher := image.NewFetcher(image.NewResolver(cfg.Image.Placeholder), image.WithCache(image.NewMemoryCache(cfg.Image.CacheSize)))
	srv := server.NewServer(engine, memStore, fetcher, cfg, nil)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/v1/search", "application/json", strings.NewReader(`{"query":"aple iphone 12"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var fuzzy models.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&fuzzy); err != nil {
		t.Fatal(err)
	}
	if !fuzzy.Fuzzy || fuzzy.Total != 1 || fuzzy.Results[0].Product.Name != "Apple iPhone 12" {
		t.Errorf("expected fuzzy match on Apple iPhone 12, got %+v", fuzzy)
	}

	res2, err := http.Get(ts.URL + "/api/v1/products/" + models.ProductID("Apple iPhone 12"))
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	var product struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&product); err != nil {
		t.Fatal(err)
	}
	if product.ImageURL != "https://img.example.com/iphone.jpg" {
		t.Errorf("image_url = %q", product.ImageURL)
	}
}
