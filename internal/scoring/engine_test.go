package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireai/internal/features"
	"github.com/jonathan/hireai/internal/types"
)

func vector(values map[string]float64) types.FeatureVector {
	return types.FeatureVector{Values: values}
}

func TestNewEngine_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		weights map[string]float64
	}{
		{"nil weights", nil},
		{"empty weights", map[string]float64{}},
		{"all zero", map[string]float64{features.SkillOverlap: 0}},
		{"negative weight", map[string]float64{features.SkillOverlap: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.weights, features.Names())

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestNewEngine_UnknownFeature(t *testing.T) {
	_, err := NewEngine(map[string]float64{"typing_speed": 1}, features.Names())

	var featErr *InvalidFeatureError
	require.ErrorAs(t, err, &featErr)
	assert.Equal(t, []string{"typing_speed"}, featErr.Features)
}

func TestScore_NormalizedWeightedSum(t *testing.T) {
	engine, err := NewEngine(map[string]float64{
		features.SkillOverlap:    3,
		features.ExperienceDelta: 1,
	}, features.Names())
	require.NoError(t, err)

	result, err := engine.Score(vector(map[string]float64{
		features.SkillOverlap:    1.0,
		features.ExperienceDelta: 0.0,
	}))
	require.NoError(t, err)

	// 3/4 of the weight on a full signal, 1/4 on an empty one.
	assert.InDelta(t, 0.75, result.Overall, 1e-9)
	assert.InDelta(t, 0.75, result.Breakdown[features.SkillOverlap], 1e-9)
	assert.InDelta(t, 0.0, result.Breakdown[features.ExperienceDelta], 1e-9)
}

func TestScore_BoundedOutput(t *testing.T) {
	engine, err := NewEngine(map[string]float64{features.SkillOverlap: 1}, features.Names())
	require.NoError(t, err)

	result, err := engine.Score(vector(map[string]float64{features.SkillOverlap: 1.0}))
	require.NoError(t, err)

	assert.True(t, result.Overall >= 0 && result.Overall <= 1)
}

func TestScore_MustHaveOverride(t *testing.T) {
	engine, err := NewEngine(map[string]float64{features.SkillOverlap: 1}, features.Names())
	require.NoError(t, err)

	result, err := engine.Score(types.FeatureVector{
		Values:            map[string]float64{features.SkillOverlap: 0.9},
		MustHaveViolation: true,
		MissingMustHaves:  []string{"python"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Overall)
	assert.True(t, result.MustHaveViolation)
	assert.Equal(t, []string{"python"}, result.MissingMustHaves)
	assert.Contains(t, result.Notes, "python")
}

func TestScore_ZeroWeightNeutrality(t *testing.T) {
	engine, err := NewEngine(map[string]float64{
		features.SkillOverlap:  1,
		features.LocationMatch: 0,
	}, features.Names())
	require.NoError(t, err)

	matched, err := engine.Score(vector(map[string]float64{
		features.SkillOverlap:  0.6,
		features.LocationMatch: 1.0,
	}))
	require.NoError(t, err)

	mismatched, err := engine.Score(vector(map[string]float64{
		features.SkillOverlap:  0.6,
		features.LocationMatch: 0.0,
	}))
	require.NoError(t, err)

	// A zero weight removes the feature's influence but keeps it in the
	// breakdown.
	assert.Equal(t, matched.Overall, mismatched.Overall)
	assert.Contains(t, matched.Breakdown, features.LocationMatch)
	assert.Equal(t, 0.0, matched.Breakdown[features.LocationMatch])
}

func TestScore_MissingWeightedFeature(t *testing.T) {
	engine, err := NewEngine(map[string]float64{
		features.SkillOverlap:    1,
		features.ExperienceDelta: 1,
	}, features.Names())
	require.NoError(t, err)

	_, err = engine.Score(vector(map[string]float64{features.SkillOverlap: 1.0}))

	var featErr *InvalidFeatureError
	require.ErrorAs(t, err, &featErr)
	assert.Equal(t, []string{features.ExperienceDelta}, featErr.Features)
}

func TestScore_UnweightedFeatureReported(t *testing.T) {
	engine, err := NewEngine(map[string]float64{features.SkillOverlap: 1}, features.Names())
	require.NoError(t, err)

	result, err := engine.Score(vector(map[string]float64{
		features.SkillOverlap:   1.0,
		features.TextSimilarity: 0.8,
	}))
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Breakdown[features.TextSimilarity])
	assert.InDelta(t, 1.0, result.Overall, 1e-9)
}

func TestScore_BitIdenticalAcrossCalls(t *testing.T) {
	// Weights whose partial sums depend on accumulation order: summing
	// these in map order would flip the last bit between calls.
	engine, err := NewEngine(map[string]float64{
		features.SkillOverlap:    0.1,
		features.ExperienceDelta: 0.2,
		features.EducationMatch:  0.3,
		features.LocationMatch:   0.1,
		features.TextSimilarity:  0.3,
	}, features.Names())
	require.NoError(t, err)

	input := vector(map[string]float64{
		features.SkillOverlap:    0.7,
		features.ExperienceDelta: 0.3,
		features.EducationMatch:  0.9,
		features.LocationMatch:   1.0,
		features.TextSimilarity:  0.1,
	})

	first, err := engine.Score(input)
	require.NoError(t, err)
	firstBits := math.Float64bits(first.Overall)

	for i := 0; i < 1000; i++ {
		result, err := engine.Score(input)
		require.NoError(t, err)
		require.Equal(t, firstBits, math.Float64bits(result.Overall))
		require.Equal(t, first.Breakdown, result.Breakdown)
	}
}
