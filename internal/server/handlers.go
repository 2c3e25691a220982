package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/shohin/internal/image"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/internal/storage"
)

// productView is a product with its resolved image URL.
type productView struct {
	*models.Product
	ImageURL string `json:"image_url"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.search(w, r, &query)
}

func (s *Server) handleSearchGet(w http.ResponseWriter, r *http.Request) {
	query := models.SearchQuery{Query: r.URL.Query().Get("q")}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		query.Limit = limit
	}
	s.search(w, r, &query)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request, query *models.SearchQuery) {
	s.logger.Debug("search request", zap.String("query", query.Query), zap.Int("limit", query.Limit))
	response, err := s.engine.Search(r.Context(), query)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.store.Catalog().ByID(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, storage.ErrNotFound.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, productView{Product: p, ImageURL: s.images.Resolver().Normalize(p.ImageRef)})
}

// handleProductImage proxies the product image, redirecting to the placeholder
// when there is none or it cannot be fetched.
func (s *Server) handleProductImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.store.Catalog().ByID(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, storage.ErrNotFound.Error())
		return
	}

	img, err := s.images.Fetch(r.Context(), p.ImageRef)
	if err != nil {
		if !errors.Is(err, image.ErrPlaceholder) {
			s.logger.Warn("image fetch failed", zap.String("id", id), zap.Error(err))
		}
		http.Redirect(w, r, s.images.Resolver().Placeholder(), http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := s.store.Catalog()
	resp := map[string]interface{}{
		"products":       snapshot.Len(),
		"catalog_source": snapshot.Source(),
		"loaded_at":      snapshot.LoadedAt().Format(time.RFC3339),
		"cleaning":       snapshot.Stats(),
		"uptime_seconds": int64(time.Since(s.startedAt).Seconds()),
	}

	cfg := s.config
	resp["config"] = map[string]interface{}{
		"default_limit":   cfg.Search.DefaultLimit,
		"max_limit":       cfg.Search.MaxLimit,
		"fuzzy_threshold": cfg.Search.FuzzyThreshold,
		"catalog_path":    cfg.Catalog.Path,
		"catalog_watch":   cfg.Catalog.Watch,
		"database_path":   cfg.Storage.DatabasePath,
		"image_cache":     imageCacheKind(cfg.Image.Redis.Enabled()),
	}
	if diskBytes, err := storage.DiskUsageBytes(cfg.Catalog.Path, cfg.Storage.DatabasePath); err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func imageCacheKind(redis bool) string {
	if redis {
		return "redis"
	}
	return "memory"
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
