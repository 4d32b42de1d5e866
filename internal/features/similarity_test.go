package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalTexts(t *testing.T) {
	text := "senior backend engineer with go and postgresql"

	assert.InDelta(t, 1.0, Similarity(text, text), 1e-9)
}

func TestSimilarity_DisjointVocabulary(t *testing.T) {
	assert.InDelta(t, 0.0, Similarity("go kubernetes grpc", "painting sculpture pottery"), 1e-9)
}

func TestSimilarity_PartialOverlap(t *testing.T) {
	score := Similarity(
		"go engineer building backend services",
		"backend services team hiring a go engineer",
	)

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 1.0)
}

func TestSimilarity_EmptyInput(t *testing.T) {
	assert.Zero(t, Similarity("", "anything"))
	assert.Zero(t, Similarity("anything", ""))
	assert.Zero(t, Similarity("", ""))
}

func TestSimilarity_CaseAndPunctuationInsensitive(t *testing.T) {
	a := Similarity("Go, PostgreSQL!", "go postgresql")

	assert.InDelta(t, 1.0, a, 1e-9)
}
