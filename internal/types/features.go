// Package types provides type definitions for structured data used throughout the hireai system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FeatureVector maps feature names to bounded numeric values for one
// (candidate, job) pair. Vectors are ephemeral: recomputed on demand and
// never treated as a source of truth.
type FeatureVector struct {
	Values map[string]float64 `json:"values"`
	// MustHaveViolation is true when any must-have skill is absent from
	// the candidate. Kept outside Values because it is a gate, not a
	// weighted signal.
	MustHaveViolation bool `json:"must_have_violation"`
	// MissingMustHaves names the must-have skills the candidate lacks.
	MissingMustHaves []string `json:"missing_must_haves,omitempty"`
}

// Get returns the value for a feature name and whether it is present.
func (v *FeatureVector) Get(name string) (float64, bool) {
	val, ok := v.Values[name]
	return val, ok
}
