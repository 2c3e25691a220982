package models

import "strings"

// SearchQuery represents a product search request.
type SearchQuery struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// Normalize lower-cases and trims a query or field value for matching.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate clamps Limit into [1, maxLimit], using defaultLimit when unset.
// An empty query is not an error: it is answered with StatusNoQuery.
func (q *SearchQuery) Validate(defaultLimit, maxLimit int) {
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}
