package features

import (
	"math"
	"strings"
	"unicode"
)

// Similarity computes the TF-IDF cosine similarity of two texts over
// their shared two-document corpus. The result is bounded [0,1] and
// deterministic; identical texts score 1, texts with disjoint
// vocabularies score 0.
func Similarity(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	tfA := termFrequencies(tokensA)
	tfB := termFrequencies(tokensB)

	// Smoothed inverse document frequency over the two-document corpus:
	// idf = ln((1+N)/(1+df)) + 1 with N = 2.
	idf := func(term string) float64 {
		df := 0.0
		if _, ok := tfA[term]; ok {
			df++
		}
		if _, ok := tfB[term]; ok {
			df++
		}
		return math.Log(3.0/(1.0+df)) + 1.0
	}

	var dot, normA, normB float64
	for term, fa := range tfA {
		wa := fa * idf(term)
		normA += wa * wa
		if fb, ok := tfB[term]; ok {
			dot += wa * fb * idf(term)
		}
	}
	for term, fb := range tfB {
		wb := fb * idf(term)
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against float drift past the bound.
	if cos > 1.0 {
		cos = 1.0
	}
	if cos < 0.0 {
		cos = 0.0
	}
	return cos
}

// tokenize lower-cases the text and splits it on any non-alphanumeric rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// termFrequencies returns relative term frequencies for one document.
func termFrequencies(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	total := float64(len(tokens))
	for term := range counts {
		counts[term] /= total
	}
	return counts
}
