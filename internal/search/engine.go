// Package search implements product match-and-rank over the current catalog snapshot.
package search

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/shohin/internal/catalog"
	"github.com/hyperjump/shohin/internal/config"
	"github.com/hyperjump/shohin/internal/keyword"
	"github.com/hyperjump/shohin/internal/metrics"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/internal/ranking"
	"github.com/hyperjump/shohin/pkg/utils"
)

// Engine answers search queries against a catalog store.
type Engine struct {
	store  catalog.Store
	ranker *ranking.Ranker
	config *config.SearchConfig
	logger *zap.Logger

	// spell checker for the snapshot it was built from
	mu           sync.Mutex
	checkerFor   *catalog.Catalog
	spellChecker *keyword.SpellChecker
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger for the engine.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates a search engine over store.
func NewEngine(store catalog.Store, cfg *config.SearchConfig, opts ...EngineOption) *Engine {
	e := &Engine{
		store:  store,
		ranker: ranking.NewRanker(cfg.AccessoryKeywords),
		config: cfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = utils.OrNop(e.logger)
	return e
}

// Search runs match-and-rank for query. Empty and unmatched queries are reported
// through the response status, not as errors.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	startTime := time.Now()
	q := *query
	q.Validate(e.config.DefaultLimit, e.config.MaxLimit)
	query = &q

	snapshot := e.store.Catalog()
	out := Match(snapshot.Products(), query.Query, query.Limit, MatchOptions{
		FuzzyThreshold: e.config.FuzzyThreshold,
		Ranker:         e.ranker,
	})

	response := &models.SearchResponse{
		Status:  out.Status,
		Results: make([]*models.SearchResult, 0, len(out.Results)),
		Total:   out.Candidates,
		Query:   query.Query,
		Fuzzy:   out.Fuzzy,
	}
	for i, r := range out.Results {
		response.Results = append(response.Results, &models.SearchResult{
			Product: r.Product,
			Score:   r.Score,
			Rank:    i + 1,
		})
	}
	if out.Status == models.StatusNoMatch && e.config.Suggestions > 0 {
		response.Suggestions = e.suggest(snapshot, out.Query)
	}

	elapsed := time.Since(startTime)
	response.QueryTime = elapsed.Milliseconds()
	metrics.ObserveSearch(string(out.Status), out.Fuzzy, len(response.Results), elapsed)
	e.logger.Debug("search",
		zap.String("query", out.Query),
		zap.String("status", string(out.Status)),
		zap.Bool("fuzzy", out.Fuzzy),
		zap.Float64("fuzzy_score", out.FuzzyScore),
		zap.Int("candidates", out.Candidates),
		zap.Int("results", len(response.Results)),
		zap.Duration("elapsed", elapsed),
	)
	return response, nil
}

// suggest returns "did you mean" queries built from the snapshot's vocabulary.
func (e *Engine) suggest(snapshot *catalog.Catalog, query string) []string {
	checker, err := e.checker(snapshot)
	if err != nil {
		e.logger.Warn("spell checker unavailable", zap.Error(err))
		return nil
	}
	return checker.GetTopSuggestions(query, e.config.Suggestions)
}

// checker returns the spell checker for snapshot, rebuilding it after a reload.
func (e *Engine) checker(snapshot *catalog.Catalog) (*keyword.SpellChecker, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.spellChecker != nil && e.checkerFor == snapshot {
		return e.spellChecker, nil
	}

	vocab, err := keyword.NewVocabulary(snapshot.Products())
	if err != nil {
		return nil, err
	}
	// The checker copies the dictionary, so the index can go right away.
	defer vocab.Close()

	checker, err := keyword.NewSpellChecker(vocab)
	if err != nil {
		return nil, err
	}
	e.checkerFor = snapshot
	e.spellChecker = checker
	e.logger.Debug("spell checker built", zap.Int("products", snapshot.Len()))
	return checker, nil
}
