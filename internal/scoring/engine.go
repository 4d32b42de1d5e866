// Package scoring combines extracted features into a single bounded score
// with a per-feature contribution breakdown explaining it.
package scoring

import (
	"sort"

	"github.com/jonathan/hireai/internal/types"
)

// Engine scores feature vectors with a fixed weighted-rule model. An
// Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	weights map[string]float64
	// names holds the weighted feature names in sorted order. Float
	// addition is not associative, so accumulating in map order would
	// make identical inputs differ by an ulp between calls.
	names []string
	total float64
}

// NewEngine validates the weight configuration against the features the
// extractor can produce and returns a ready engine.
//
// Zero weights are permitted: the feature is still computed and reported
// with a zero contribution. A nil or all-zero weight map is a
// *ConfigError; a weight naming an unavailable feature is an
// *InvalidFeatureError.
func NewEngine(weights map[string]float64, available []string) (*Engine, error) {
	if len(weights) == 0 {
		return nil, &ConfigError{Message: "no feature weights configured"}
	}

	availableSet := make(map[string]bool, len(available))
	for _, name := range available {
		availableSet[name] = true
	}

	var unknown []string
	total := 0.0
	for name, w := range weights {
		if w < 0 {
			return nil, &ConfigError{Message: "weight for " + name + " is negative"}
		}
		if !availableSet[name] {
			unknown = append(unknown, name)
		}
		total += w
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &InvalidFeatureError{Features: unknown}
	}
	if total <= 0 {
		return nil, &ConfigError{Message: "weight total must be positive"}
	}

	copied := make(map[string]float64, len(weights))
	names := make([]string, 0, len(weights))
	for name, w := range weights {
		copied[name] = w
		names = append(names, name)
	}
	sort.Strings(names)
	return &Engine{weights: copied, names: names, total: total}, nil
}

// Score computes the overall score and breakdown for one feature vector.
//
// Overall is the weighted sum over all features, normalized by the weight
// total so it stays in [0,1]. A must-have violation overrides the overall
// score to 0.0 and the breakdown names the missing skill(s). A weighted
// feature absent from the vector is an *InvalidFeatureError: extractor
// drift must surface, not vanish.
func (e *Engine) Score(vector types.FeatureVector) (types.ScoreResult, error) {
	breakdown := make(map[string]float64, len(vector.Values))

	var missing []string
	overall := 0.0
	for _, name := range e.names {
		weight := e.weights[name]
		value, ok := vector.Get(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		contribution := weight * value / e.total
		breakdown[name] = contribution
		overall += contribution
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return types.ScoreResult{}, &InvalidFeatureError{Features: missing}
	}

	// Unweighted features are reported with zero contribution so the
	// breakdown always covers the full vector.
	for name := range vector.Values {
		if _, ok := breakdown[name]; !ok {
			breakdown[name] = 0.0
		}
	}

	if overall > 1.0 {
		overall = 1.0
	}
	if overall < 0.0 {
		overall = 0.0
	}

	result := types.ScoreResult{
		Overall:   overall,
		Breakdown: breakdown,
	}

	if vector.MustHaveViolation {
		result.Overall = 0.0
		result.MustHaveViolation = true
		result.MissingMustHaves = append([]string(nil), vector.MissingMustHaves...)
		sort.Strings(result.MissingMustHaves)
	}

	result.Notes = buildNotes(&result, vector)
	return result, nil
}

// Weights returns a copy of the configured weights, for reporting.
func (e *Engine) Weights() map[string]float64 {
	copied := make(map[string]float64, len(e.weights))
	for name, w := range e.weights {
		copied[name] = w
	}
	return copied
}
