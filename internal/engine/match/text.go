// Package match scores resume text against job postings.
//
// Two strategies exist: a vector-space (TF + pairwise IDF + cosine) scorer
// over free text, and a keyword-overlap scorer over structured job fields.
// Every entry point is a pure function over caller-supplied strings; no
// state survives a call, so concurrent use needs no locking.
package match

import (
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to scoring.
// Shared by the tokenizer and the keyword scorer; never mutated after init.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
}

// Normalize lowercases text. Case is the only semantic normalization;
// no unicode or diacritic folding.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// isWordChar reports whether r belongs inside a term.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Tokenize splits normalized text into significant terms: non-word characters
// become separators, tokens of length <= 3 and stop words are dropped.
// Order follows the input; duplicates are retained.
func Tokenize(text string) []string {
	var terms []string
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		if len([]rune(w)) > 3 && !stopWords[w] {
			terms = append(terms, w)
		}
	}
	for _, r := range Normalize(text) {
		if isWordChar(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return terms
}

// CountTerms accumulates per-term occurrence counts from a token sequence.
func CountTerms(terms []string) map[string]int {
	freq := make(map[string]int, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	return freq
}
