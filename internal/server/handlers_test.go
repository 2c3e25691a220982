package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyperjump/shohin/internal/catalog"
	"github.com/hyperjump/shohin/internal/config"
	"github.com/hyperjump/shohin/internal/image"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/internal/search"
	"go.uber.org/zap"
)

type testEnv struct {
	handler http.Handler
	store   *catalog.MemoryStore
	imgSrv  *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	imgSrv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/iphone.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("JPEG"))
	}))
	t.Cleanup(imgSrv.Close)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Catalog.Path = ""
	cfg.Storage.DatabasePath = ""

	products := []models.Product{
		models.NewProduct("iPhone 12", "Apple", 50000, `["`+imgSrv.URL+`/iphone.jpg"]`),
		models.NewProduct("iPhone 12 Case", "Spigen", 500, imgSrv.URL+"/missing.jpg"),
		models.NewProduct("Galaxy Watch", "Samsung", 20000, ""),
	}
	store := catalog.NewMemoryStore(catalog.New("test.csv", products, catalog.Stats{RowsRead: 3, Products: 3}))
	engine := search.NewEngine(store, &cfg.Search)
	fetcher := image.NewFetcher(image.NewResolver(cfg.Image.Placeholder),
		image.WithHTTPClient(imgSrv.Client()),
		image.WithCache(image.NewMemoryCache(4)),
	)
	srv := NewServer(engine, store, fetcher, cfg, zap.NewNop())
	return &testEnv{handler: srv.Router(), store: store, imgSrv: imgSrv}
}

func (e *testEnv) do(t *testing.T, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, http.NoBody)
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, r)
	return w
}

func decodeSearch(t *testing.T, w *httptest.ResponseRecorder) models.SearchResponse {
	t.Helper()
	var resp models.SearchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHandleSearch_Post(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/search", []byte(`{"query":"iphone","limit":1}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeSearch(t, w)
	if resp.Status != models.StatusOK || resp.Total != 2 || len(resp.Results) != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Results[0].Product.Name != "iPhone 12" || resp.Results[0].Rank != 1 {
		t.Errorf("top result: %+v", resp.Results[0].Product)
	}
}

func TestHandleSearch_Get(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/search?q=samsung", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	resp := decodeSearch(t, w)
	if len(resp.Results) != 1 || resp.Results[0].Score != 15 {
		t.Errorf("unexpected response: %+v", resp)
	}

	w = env.do(t, http.MethodGet, "/api/v1/search?q=", nil)
	if resp := decodeSearch(t, w); resp.Status != models.StatusNoQuery {
		t.Errorf("empty q: status %s", resp.Status)
	}

	w = env.do(t, http.MethodGet, "/api/v1/search?q=x&limit=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: got %d", w.Code)
	}
}

func TestHandleSearch_BadBody(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/search", []byte(`{not json`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
	var body map[string]string
	_ = json.NewDecoder(w.Body).Decode(&body)
	if body["error"] != "invalid request body" {
		t.Errorf("error body: %v", body)
	}
}

func TestHandleSearch_NoMatch(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/search", []byte(`{"query":"galxy"}`))
	resp := decodeSearch(t, w)
	if resp.Status != models.StatusNoMatch || len(resp.Results) != 0 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(resp.Suggestions) == 0 || resp.Suggestions[0] != "galaxy" {
		t.Errorf("suggestions: %v", resp.Suggestions)
	}
}

func TestHandleGetProduct(t *testing.T) {
	env := newTestEnv(t)
	id := models.ProductID("iPhone 12")
	w := env.do(t, http.MethodGet, "/api/v1/products/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.ID != id || out.Name != "iPhone 12" || out.ImageURL != env.imgSrv.URL+"/iphone.jpg" {
		t.Errorf("unexpected product: %+v", out)
	}

	w = env.do(t, http.MethodGet, "/api/v1/products/unknown", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product: got %d", w.Code)
	}
}

func TestHandleProductImage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/products/"+models.ProductID("iPhone 12")+"/image", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "image/jpeg" || w.Body.String() != "JPEG" {
		t.Errorf("unexpected image: %q %q", w.Header().Get("Content-Type"), w.Body.String())
	}

	for _, name := range []string{"Galaxy Watch", "iPhone 12 Case"} {
		w = env.do(t, http.MethodGet, "/api/v1/products/"+models.ProductID(name)+"/image", nil)
		if w.Code != http.StatusFound {
			t.Errorf("%s: got %d, want 302", name, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != config.DefaultPlaceholder {
			t.Errorf("%s: redirect to %q", name, loc)
		}
	}

	w = env.do(t, http.MethodGet, "/api/v1/products/nope/image", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product: got %d", w.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["products"].(float64) != 3 || out["catalog_source"] != "test.csv" {
		t.Errorf("unexpected status: %v", out)
	}
	cfg := out["config"].(map[string]interface{})
	if cfg["default_limit"].(float64) != 8 || cfg["image_cache"] != "memory" {
		t.Errorf("unexpected config: %v", cfg)
	}
}

func TestHandleHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("health: %d %s", w.Code, w.Body.String())
	}

	env.do(t, http.MethodGet, "/api/v1/search?q=apple", nil)
	w = env.do(t, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: got %d", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"shohin_http_requests_total", "shohin_searches_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}
