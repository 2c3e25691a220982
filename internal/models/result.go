package models

// SearchStatus tells the presentation layer which state to render.
type SearchStatus string

const (
	// StatusOK means Results holds at least one product.
	StatusOK SearchStatus = "ok"
	// StatusNoQuery means the query was empty after normalization; show an input prompt.
	StatusNoQuery SearchStatus = "no_query"
	// StatusNoMatch means neither direct nor fuzzy matching found a product.
	StatusNoMatch SearchStatus = "no_match"
)

// SearchResult is a single ranked product.
type SearchResult struct {
	Product *Product `json:"product"`
	Score   int      `json:"score"`
	Rank    int      `json:"rank"`
}

// SearchResponse is the response for a search request.
type SearchResponse struct {
	Status    SearchStatus    `json:"status"`
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	Query     string          `json:"query"`
	QueryTime int64           `json:"query_time_ms"`
	// Fuzzy is true when the results came from the token-set fallback rather than substring matching.
	Fuzzy bool `json:"fuzzy,omitempty"`
	// Suggestions holds "Did you mean?" queries. Only populated on StatusNoMatch.
	Suggestions []string `json:"suggestions,omitempty"`
}
