package search

import (
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/shohin/internal/keyword"
	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/internal/ranking"
)

// DefaultFuzzyThreshold is the token-set score a fuzzy candidate must exceed.
const DefaultFuzzyThreshold = 70.0

// MatchOptions configures Match. Zero values select the defaults.
type MatchOptions struct {
	FuzzyThreshold float64
	Ranker         *ranking.Ranker
}

// Outcome is the result of matching one query against a product list.
type Outcome struct {
	Status models.SearchStatus
	// Query is the normalized query.
	Query string
	// Fuzzy is set when candidates came from the token-set fallback.
	Fuzzy      bool
	FuzzyScore float64
	// Candidates is the number of matches before truncation.
	Candidates int
	Results    []*ranking.RankedResult
}

// Match finds products for query and ranks them, returning at most maxItems.
//
// A product matches directly when its lower-cased name or brand contains the
// normalized query. Only when nothing matches directly, the product name most
// similar to the query by token-set ratio is taken if its score is above the
// threshold; earlier products win ties. Results are ordered by relevance, then
// price, both descending, and keep catalog order otherwise.
//
// Match has no side effects and is safe to call concurrently on a shared slice.
func Match(products []models.Product, query string, maxItems int, opts MatchOptions) Outcome {
	q := models.Normalize(query)
	out := Outcome{Query: q}
	if q == "" {
		out.Status = models.StatusNoQuery
		return out
	}

	threshold := opts.FuzzyThreshold
	if threshold == 0 {
		threshold = DefaultFuzzyThreshold
	}
	ranker := opts.Ranker
	if ranker == nil {
		ranker = ranking.NewRanker(nil)
	}

	candidates := directMatches(products, q)
	if len(candidates) == 0 {
		candidates, out.FuzzyScore = fuzzyMatches(products, q, threshold)
		out.Fuzzy = len(candidates) > 0
	}
	if len(candidates) == 0 {
		out.Status = models.StatusNoMatch
		return out
	}

	out.Status = models.StatusOK
	out.Candidates = len(candidates)
	out.Results = ranking.TopN(ranker.Rank(q, candidates), maxItems)
	return out
}

// matchField returns the lower-cased field, or "" when it cannot take part in matching.
func matchField(s string) string {
	if s == "" || !utf8.ValidString(s) {
		return ""
	}
	return strings.ToLower(s)
}

func directMatches(products []models.Product, q string) []*models.Product {
	var matched []*models.Product
	for i := range products {
		p := &products[i]
		name, brand := matchField(p.Name), matchField(p.Brand)
		if (name != "" && strings.Contains(name, q)) || (brand != "" && strings.Contains(brand, q)) {
			matched = append(matched, p)
		}
	}
	return matched
}

func fuzzyMatches(products []models.Product, q string, threshold float64) ([]*models.Product, float64) {
	if len(products) == 0 {
		return nil, 0
	}
	choices := make([]string, len(products))
	for i := range products {
		choices[i] = matchField(products[i].Name)
	}
	best, score := keyword.BestMatch(q, choices)
	if best < 0 || score <= threshold {
		return nil, score
	}

	bestName := products[best].Name
	var matched []*models.Product
	for i := range products {
		if products[i].Name == bestName {
			matched = append(matched, &products[i])
		}
	}
	return matched, score
}
