package datagen

import (
	"sort"
	"strings"
	"unicode"
)

// maxExtractedTerms caps the vocabulary returned by ExtractTerms.
const maxExtractedTerms = 10000

// ExtractTerms lowercases the text, splits it into purely alphabetic tokens
// of at least minLength runes, and returns the unique tokens ordered by
// descending frequency (ties broken alphabetically for determinism).
func ExtractTerms(text string, minLength int) []string {
	freq := make(map[string]int)

	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if len([]rune(tok)) < minLength {
			continue
		}
		freq[tok]++
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > maxExtractedTerms {
		terms = terms[:maxExtractedTerms]
	}
	return terms
}
