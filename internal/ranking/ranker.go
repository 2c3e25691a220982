// Package ranking assigns relevance scores to matched products and orders them.
package ranking

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/shohin/internal/models"
)

const (
	// BrandBonus is added when the brand contains the query.
	BrandBonus = 10
	// NonAccessoryBonus is added when the name contains no accessory keyword, so a
	// bare "phone" query surfaces the device before its cases and cables.
	NonAccessoryBonus = 5
)

// DefaultAccessoryKeywords identify accessory products by substring of the name.
var DefaultAccessoryKeywords = []string{"cable", "glass", "cover", "case", "usb", "mount", "adapter"}

// RankedResult holds a product with its relevance score.
type RankedResult struct {
	Product *models.Product
	Score   int
}

// Ranker scores and orders candidate products. It holds no per-query state and is
// safe for concurrent use.
type Ranker struct {
	accessoryKeywords []string
}

// NewRanker creates a Ranker. A nil keyword list selects DefaultAccessoryKeywords;
// an empty non-nil list disables the accessory check.
func NewRanker(accessoryKeywords []string) *Ranker {
	if accessoryKeywords == nil {
		accessoryKeywords = DefaultAccessoryKeywords
	}
	kw := make([]string, 0, len(accessoryKeywords))
	for _, k := range accessoryKeywords {
		if k = models.Normalize(k); k != "" {
			kw = append(kw, k)
		}
	}
	return &Ranker{accessoryKeywords: kw}
}

// AccessoryKeywords returns the normalized keyword list in use.
func (r *Ranker) AccessoryKeywords() []string {
	return append([]string(nil), r.accessoryKeywords...)
}

// IsAccessory reports whether the lower-cased name contains any accessory keyword.
func (r *Ranker) IsAccessory(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range r.accessoryKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Score returns the relevance of p for an already-normalized query: 0, 5, 10 or 15.
// An empty or malformed (invalid UTF-8) brand never earns the brand bonus.
func (r *Ranker) Score(query string, p *models.Product) int {
	score := 0
	if query != "" && p.Brand != "" && utf8.ValidString(p.Brand) && strings.Contains(strings.ToLower(p.Brand), query) {
		score += BrandBonus
	}
	if !r.IsAccessory(p.Name) {
		score += NonAccessoryBonus
	}
	return score
}

// Rank scores candidates and sorts them by score descending, then price descending.
// Candidates equal on both keep their input order.
func (r *Ranker) Rank(query string, candidates []*models.Product) []*RankedResult {
	results := make([]*RankedResult, 0, len(candidates))
	for _, p := range candidates {
		results = append(results, &RankedResult{Product: p, Score: r.Score(query, p)})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return Less(results[i], results[j])
	})
	return results
}

// Less reports whether a ranks before b.
func Less(a, b *RankedResult) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Product.Price > b.Product.Price
}

// TopN returns the top N results.
func TopN(results []*RankedResult, n int) []*RankedResult {
	if n < 0 {
		n = 0
	}
	if n >= len(results) {
		return results
	}
	return results[:n]
}
