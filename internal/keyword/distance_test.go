package keyword

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"identical empty", "", "", 0},
		{"identical word", "phone", "phone", 0},
		{"empty a", "", "watch", 5},
		{"empty b", "watch", "", 5},
		{"one substitution", "case", "cast", 1},
		{"one insertion", "iphne", "iphone", 1},
		{"one deletion", "adapter", "adaptr", 1},
		{"kitten to sitting", "kitten", "sitting", 3},
		{"case difference", "Apple", "apple", 1},
		{"unicode substitution", "café", "cafe", 1},
		{"transposition counts twice", "ab", "ba", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevenshteinDistance(tt.a, tt.b); got != tt.expected {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := LevenshteinDistance(tt.b, tt.a); got != tt.expected {
				t.Errorf("LevenshteinDistance not symmetric for %q, %q", tt.a, tt.b)
			}
		})
	}
}

func TestIndelDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"cat", "bat", 2}, // substitution = delete + insert
		{"ifone", "13 iphone", 6},
		{"iphne", "13 iphone", 4},
	}
	for _, tt := range tests {
		if got := IndelDistance(tt.a, tt.b); got != tt.expected {
			t.Errorf("IndelDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestIndelRatio(t *testing.T) {
	if got := IndelRatio("", ""); got != 100 {
		t.Errorf("IndelRatio of empty strings = %v, want 100", got)
	}
	if got := IndelRatio("abc", "xyz"); got != 0 {
		t.Errorf("IndelRatio of disjoint strings = %v, want 0", got)
	}
	// 2*LCS / lensum = 2*3/8
	if got := IndelRatio("abcd", "abce"); math.Abs(got-75) > 1e-9 {
		t.Errorf("IndelRatio(abcd, abce) = %v, want 75", got)
	}
}
