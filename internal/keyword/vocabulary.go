package keyword

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/hyperjump/shohin/internal/models"
)

// vocabularyFields are the product fields whose terms feed the dictionary.
var vocabularyFields = []string{"name", "brand"}

type vocabularyDoc struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

// Vocabulary is an in-memory Bleve index over product names and brands. It
// implements TermDictionary with per-term product frequencies.
type Vocabulary struct {
	index bleve.Index
	terms []string
	freq  map[string]int
}

// NewVocabulary indexes products in memory and snapshots the term dictionary.
// The standard analyzer lower-cases and tokenizes without stemming, so dictionary
// terms are words as they appear in product names.
func NewVocabulary(products []models.Product) (*Vocabulary, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	for _, f := range vocabularyFields {
		docMapping.AddFieldMappingsAt(f, textFieldMapping)
	}
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create vocabulary index: %w", err)
	}

	batch := index.NewBatch()
	for _, p := range products {
		if err := batch.Index(p.ID, vocabularyDoc{Name: p.Name, Brand: p.Brand}); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to index product %q: %w", p.Name, err)
		}
	}
	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			_ = index.Close()
			return nil, fmt.Errorf("failed to build vocabulary index: %w", err)
		}
	}

	v := &Vocabulary{index: index, freq: make(map[string]int)}
	if err := v.loadTerms(); err != nil {
		_ = index.Close()
		return nil, err
	}
	return v, nil
}

// loadTerms walks each field dictionary. Dictionaries are sorted, so terms end up
// in lexical order with the first field's order winning for duplicates.
func (v *Vocabulary) loadTerms() error {
	for _, field := range vocabularyFields {
		dict, err := v.index.FieldDict(field)
		if err != nil {
			return fmt.Errorf("failed to read %s dictionary: %w", field, err)
		}
		for {
			entry, err := dict.Next()
			if err != nil || entry == nil {
				break
			}
			if _, seen := v.freq[entry.Term]; !seen {
				v.terms = append(v.terms, entry.Term)
			}
			// A product counts once per field; the larger field count is the better estimate.
			if c := int(entry.Count); c > v.freq[entry.Term] {
				v.freq[entry.Term] = c
			}
		}
		_ = dict.Close()
	}
	return nil
}

// GetAllTerms returns all unique terms from names and brands.
func (v *Vocabulary) GetAllTerms() ([]string, error) {
	return append([]string(nil), v.terms...), nil
}

// GetTermFrequency returns the number of products containing term.
func (v *Vocabulary) GetTermFrequency(term string) (int, error) {
	return v.freq[term], nil
}

// ContainsTerm checks if a term exists in the vocabulary.
func (v *Vocabulary) ContainsTerm(term string) (bool, error) {
	_, ok := v.freq[term]
	return ok, nil
}

// DocCount returns the number of indexed products.
func (v *Vocabulary) DocCount() (uint64, error) {
	return v.index.DocCount()
}

// Close releases the index.
func (v *Vocabulary) Close() error {
	return v.index.Close()
}
