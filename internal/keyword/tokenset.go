package keyword

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// TokenSetRatio scores how similar a and b are on a 0-100 scale, comparing the sets
// of whitespace-separated tokens so word order and repeated words do not matter.
//
// The shared tokens (sect) are compared against sect plus each side's leftover
// tokens, and the two leftovers are compared against each other; the best of those
// ratios wins. When one token set contains the other the score is 100.
// Either side without tokens scores 0.
func TokenSetRatio(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var sect, diffAB, diffBA []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			sect = append(sect, tok)
		} else {
			diffAB = append(diffAB, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			diffBA = append(diffBA, tok)
		}
	}
	if len(sect) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	sort.Strings(sect)
	sort.Strings(diffAB)
	sort.Strings(diffBA)
	sectJoined := strings.Join(sect, " ")
	abJoined := strings.Join(diffAB, " ")
	baJoined := strings.Join(diffBA, " ")

	sectLen := utf8.RuneCountInString(sectJoined)
	abLen := utf8.RuneCountInString(abJoined)
	baLen := utf8.RuneCountInString(baJoined)
	sep := 0
	if sectLen > 0 {
		sep = 1
	}
	sectABLen := sectLen + sep + abLen
	sectBALen := sectLen + sep + baLen

	// sect+ab and sect+ba share their prefix, so their distance is the leftovers' distance.
	result := normalizedSimilarity(IndelDistance(abJoined, baJoined), sectABLen+sectBALen)
	if sectLen == 0 {
		return result
	}

	sectABRatio := normalizedSimilarity(sep+abLen, sectLen+sectABLen)
	sectBARatio := normalizedSimilarity(sep+baLen, sectLen+sectBALen)
	return max(result, sectABRatio, sectBARatio)
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// BestMatch returns the index and score of the choice most similar to query under
// TokenSetRatio. Ties go to the earliest choice. Returns -1 when choices is empty.
func BestMatch(query string, choices []string) (int, float64) {
	best, bestScore := -1, -1.0
	for i, c := range choices {
		if score := TokenSetRatio(query, c); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, bestScore
}
