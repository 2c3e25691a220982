package keyword

import (
	"errors"
	"testing"
)

// mockTermDictionary is a mock implementation of TermDictionary for testing.
type mockTermDictionary struct {
	terms       map[string]int // term -> frequency
	getAllError error
}

func newMockTermDictionary(terms map[string]int) *mockTermDictionary {
	return &mockTermDictionary{terms: terms}
}

func (m *mockTermDictionary) GetAllTerms() ([]string, error) {
	if m.getAllError != nil {
		return nil, m.getAllError
	}
	result := make([]string, 0, len(m.terms))
	for term := range m.terms {
		result = append(result, term)
	}
	return result, nil
}

func (m *mockTermDictionary) GetTermFrequency(term string) (int, error) {
	return m.terms[term], nil
}

func (m *mockTermDictionary) ContainsTerm(term string) (bool, error) {
	_, ok := m.terms[term]
	return ok, nil
}

func mustSpellChecker(t *testing.T, terms map[string]int, opts ...SpellCheckerOption) *SpellChecker {
	t.Helper()
	sc, err := NewSpellChecker(newMockTermDictionary(terms), opts...)
	if err != nil {
		t.Fatalf("NewSpellChecker: %v", err)
	}
	return sc
}

func TestSpellChecker_Defaults(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{"phone": 10})
	if sc.maxDistance != 2 {
		t.Errorf("default maxDistance = %d, want 2", sc.maxDistance)
	}
	if sc.minFreq != 1 {
		t.Errorf("default minFreq = %d, want 1", sc.minFreq)
	}
	if sc.maxSuggestions != 5 {
		t.Errorf("default maxSuggestions = %d, want 5", sc.maxSuggestions)
	}
	if sc.minTermLength != 3 {
		t.Errorf("default minTermLength = %d, want 3", sc.minTermLength)
	}
}

func TestSpellChecker_WithOptions(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{"phone": 10},
		WithMaxDistance(3),
		WithMinFrequency(5),
		WithMaxSuggestions(10),
		WithMinTermLength(1),
	)
	if sc.maxDistance != 3 || sc.minFreq != 5 || sc.maxSuggestions != 10 || sc.minTermLength != 1 {
		t.Errorf("options not applied: %+v", sc)
	}
}

func TestSpellChecker_DictionaryError(t *testing.T) {
	dict := &mockTermDictionary{getAllError: errors.New("boom")}
	if _, err := NewSpellChecker(dict); err == nil {
		t.Error("expected error when dictionary fails")
	}
}

func TestSpellChecker_Suggest(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{
		"watch": 10,
		"match": 2,
		"batch": 2,
		"phone": 8,
	})

	got := sc.Suggest("wacth")
	if len(got) == 0 {
		t.Fatal("expected suggestions for wacth")
	}
	if got[0].Term != "watch" {
		t.Errorf("best suggestion = %q, want watch", got[0].Term)
	}

	// batch and match tie on score; lexical order breaks the tie.
	got = sc.Suggest("xatch")
	var order []string
	for _, s := range got {
		order = append(order, s.Term)
	}
	if len(order) < 3 || order[0] != "watch" || order[1] != "batch" || order[2] != "match" {
		t.Errorf("suggestion order = %v, want [watch batch match]", order)
	}

	if got := sc.Suggest("zzzzzzzz"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestSpellChecker_Suggest_MaxSuggestions(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{"aa": 1, "ab": 1, "ac": 1, "ad": 1}, WithMaxSuggestions(2))
	if got := sc.Suggest("ax"); len(got) != 2 {
		t.Errorf("got %d suggestions, want 2", len(got))
	}
}

func TestSpellChecker_Check(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{"smart": 5, "watch": 10})

	result := sc.Check("Smart wacth")
	if !result.HasCorrections {
		t.Fatal("expected corrections")
	}
	if result.CorrectedQuery != "smart watch" {
		t.Errorf("CorrectedQuery = %q, want %q", result.CorrectedQuery, "smart watch")
	}
	if len(result.MisspelledTerms) != 1 || result.MisspelledTerms[0] != "wacth" {
		t.Errorf("MisspelledTerms = %v", result.MisspelledTerms)
	}

	result = sc.Check("smart watch")
	if result.HasCorrections {
		t.Error("known terms should not be corrected")
	}
}

func TestSpellChecker_ShortTermsUntouched(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{"tv": 3, "usb": 3})
	if got := sc.GetSuggestedQuery("tx"); got != "tx" {
		t.Errorf("short term corrected to %q", got)
	}
}

func TestSpellChecker_GetTopSuggestions(t *testing.T) {
	sc := mustSpellChecker(t, map[string]int{"watch": 10, "match": 2, "smart": 4})

	got := sc.GetTopSuggestions("smart xatch", 2)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 suggestions", got)
	}
	if got[0] != "smart watch" || got[1] != "smart match" {
		t.Errorf("got %v", got)
	}

	if got := sc.GetTopSuggestions("smart watch", 3); len(got) != 0 {
		t.Errorf("correct query should have no suggestions, got %v", got)
	}
	if got := sc.GetTopSuggestions("xatch", 0); got != nil {
		t.Errorf("n=0 should return nil, got %v", got)
	}
}
