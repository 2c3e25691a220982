package keyword

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Suggestion represents a spelling suggestion with its score.
type Suggestion struct {
	Term      string  // The suggested term
	Distance  int     // Edit distance from the original term
	Frequency int     // Number of products containing the term
	Score     float64 // Combined score for ranking
}

// SpellCheckResult contains the result of spell checking a query.
type SpellCheckResult struct {
	OriginalQuery   string
	CorrectedQuery  string
	Suggestions     []Suggestion // Suggestions for each misspelled term
	HasCorrections  bool
	MisspelledTerms []string
}

// SpellChecker proposes corrections for query terms missing from a TermDictionary.
// The dictionary is read once at construction; a SpellChecker is immutable and safe
// for concurrent use.
type SpellChecker struct {
	maxDistance    int
	minFreq        int
	maxSuggestions int
	minTermLength  int

	terms   []string
	freq    map[string]int
	termSet map[string]struct{}
}

// SpellCheckerOption is a functional option for configuring SpellChecker.
type SpellCheckerOption func(*SpellChecker)

// WithMaxDistance sets the maximum edit distance for suggestions.
func WithMaxDistance(d int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if d > 0 {
			s.maxDistance = d
		}
	}
}

// WithMinFrequency sets the minimum product frequency for suggestions.
func WithMinFrequency(f int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if f >= 0 {
			s.minFreq = f
		}
	}
}

// WithMaxSuggestions sets the maximum number of suggestions to return per term.
func WithMaxSuggestions(n int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if n > 0 {
			s.maxSuggestions = n
		}
	}
}

// WithMinTermLength leaves query terms shorter than n runes uncorrected.
func WithMinTermLength(n int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if n >= 0 {
			s.minTermLength = n
		}
	}
}

// NewSpellChecker creates a SpellChecker over dict.
func NewSpellChecker(dict TermDictionary, opts ...SpellCheckerOption) (*SpellChecker, error) {
	s := &SpellChecker{
		maxDistance:    2,
		minFreq:        1,
		maxSuggestions: 5,
		minTermLength:  3,
	}
	for _, opt := range opts {
		opt(s)
	}

	terms, err := dict.GetAllTerms()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary terms: %w", err)
	}
	s.terms = make([]string, 0, len(terms))
	s.freq = make(map[string]int, len(terms))
	s.termSet = make(map[string]struct{}, len(terms))
	for _, t := range terms {
		lower := strings.ToLower(t)
		if _, dup := s.termSet[lower]; dup {
			continue
		}
		freq, err := dict.GetTermFrequency(t)
		if err != nil {
			continue
		}
		s.terms = append(s.terms, lower)
		s.freq[lower] = freq
		s.termSet[lower] = struct{}{}
	}
	return s, nil
}

// Check checks a query for spelling errors and returns suggestions.
func (s *SpellChecker) Check(query string) *SpellCheckResult {
	terms := strings.Fields(strings.ToLower(query))
	result := &SpellCheckResult{
		OriginalQuery:   query,
		Suggestions:     make([]Suggestion, 0),
		MisspelledTerms: make([]string, 0),
	}

	corrected := make([]string, 0, len(terms))
	for _, term := range terms {
		if !s.IsMisspelled(term) || utf8.RuneCountInString(term) < s.minTermLength {
			corrected = append(corrected, term)
			continue
		}
		suggestions := s.Suggest(term)
		if len(suggestions) == 0 {
			corrected = append(corrected, term)
			continue
		}
		result.HasCorrections = true
		result.MisspelledTerms = append(result.MisspelledTerms, term)
		result.Suggestions = append(result.Suggestions, suggestions...)
		corrected = append(corrected, suggestions[0].Term)
	}

	result.CorrectedQuery = strings.Join(corrected, " ")
	return result
}

// Suggest returns spelling suggestions for a single term, best first.
func (s *SpellChecker) Suggest(term string) []Suggestion {
	termLower := strings.ToLower(term)
	termLen := utf8.RuneCountInString(termLower)
	suggestions := make([]Suggestion, 0)

	for _, dictTerm := range s.terms {
		if dictTerm == termLower {
			continue
		}
		// Length difference is a lower bound on the edit distance.
		lenDiff := utf8.RuneCountInString(dictTerm) - termLen
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.maxDistance {
			continue
		}

		distance := LevenshteinDistance(termLower, dictTerm)
		if distance > s.maxDistance {
			continue
		}
		freq := s.freq[dictTerm]
		if freq < s.minFreq {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Term:      dictTerm,
			Distance:  distance,
			Frequency: freq,
			Score:     float64(freq) / float64(distance+1),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Term < suggestions[j].Term
	})
	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}
	return suggestions
}

// IsMisspelled reports whether term is absent from the dictionary.
func (s *SpellChecker) IsMisspelled(term string) bool {
	_, exists := s.termSet[strings.ToLower(term)]
	return !exists
}

// GetSuggestedQuery returns the best corrected query, or query itself when nothing
// needed correcting.
func (s *SpellChecker) GetSuggestedQuery(query string) string {
	result := s.Check(query)
	if !result.HasCorrections {
		return query
	}
	return result.CorrectedQuery
}

// GetTopSuggestions returns up to n distinct corrected queries. The first replaces
// every misspelled term with its best suggestion; the rest swap in runner-up
// suggestions for the first misspelled term.
func (s *SpellChecker) GetTopSuggestions(query string, n int) []string {
	if n <= 0 {
		return nil
	}
	result := s.Check(query)
	if !result.HasCorrections {
		return nil
	}

	out := make([]string, 0, n)
	seen := make(map[string]struct{})
	add := func(q string) {
		if _, ok := seen[q]; ok || q == strings.ToLower(strings.TrimSpace(query)) {
			return
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	add(result.CorrectedQuery)

	first := result.MisspelledTerms[0]
	base := strings.Fields(result.CorrectedQuery)
	original := strings.Fields(strings.ToLower(query))
	for _, alt := range s.Suggest(first) {
		if len(out) >= n {
			break
		}
		variant := make([]string, len(base))
		copy(variant, base)
		for i, t := range original {
			if t == first {
				variant[i] = alt.Term
			}
		}
		add(strings.Join(variant, " "))
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}
