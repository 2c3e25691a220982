package keyword

// TermDictionary provides access to the term dictionary for spell checking.
// This interface allows dependency injection for testing.
type TermDictionary interface {
	// GetAllTerms returns all unique terms.
	GetAllTerms() ([]string, error)
	// GetTermFrequency returns the number of products containing the term.
	GetTermFrequency(term string) (int, error)
	// ContainsTerm checks if a term exists.
	ContainsTerm(term string) (bool, error)
}
