package match

import "math"

// cosineSimilarity compares two frequency maps over their shared vocabulary.
//
// Weights are tf × a pairwise multiplier: 1 for terms present in both maps,
// 2 for terms exclusive to one side. This is NOT corpus IDF — with only two
// documents there is no corpus, so shared terms are treated as half as
// discriminative as exclusive ones. Keep the behavior as is; swapping in a
// textbook formula changes every score.
func cosineSimilarity(fa, fb map[string]int) float64 {
	vocab := make([]string, 0, len(fa)+len(fb))
	for t := range fa {
		vocab = append(vocab, t)
	}
	for t := range fb {
		if _, ok := fa[t]; !ok {
			vocab = append(vocab, t)
		}
	}

	weight := func(own, other map[string]int, term string) float64 {
		tf := own[term]
		if tf == 0 {
			return 0
		}
		if _, shared := other[term]; shared {
			return float64(tf)
		}
		return float64(tf) * 2
	}

	var dot, normA, normB float64
	for _, t := range vocab {
		wa := weight(fa, fb, t)
		wb := weight(fb, fa, t)
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SemanticSimilarity scores two raw texts with the vector-space strategy
// and returns a percentage in [0, 100]. Empty input short-circuits to 0.
func SemanticSimilarity(textA, textB string) int {
	if textA == "" || textB == "" {
		return 0
	}
	fa := CountTerms(Tokenize(textA))
	fb := CountTerms(Tokenize(textB))
	return toPercent(cosineSimilarity(fa, fb))
}

// toPercent converts a [0,1] similarity to a rounded, capped percentage.
func toPercent(sim float64) int {
	pct := int(math.Round(sim * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
