// Package types provides type definitions for structured data used throughout the hireai system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreResult is the scored outcome for a single candidate against a job.
type ScoreResult struct {
	// Overall is the combined score in [0,1]. Forced to 0.0 when any
	// must-have skill is missing, regardless of other features.
	Overall float64 `json:"overall"`
	// Breakdown maps feature names to their signed contribution to Overall.
	Breakdown map[string]float64 `json:"breakdown"`
	// MustHaveViolation marks that the candidate failed a must-have constraint.
	MustHaveViolation bool `json:"must_have_violation"`
	// MissingMustHaves names the must-have skills responsible for the violation.
	MissingMustHaves []string `json:"missing_must_haves,omitempty"`
	// Notes is a brief human-readable explanation of the score.
	Notes string `json:"notes,omitempty"`
}

// RankedCandidate pairs a candidate identifier with its score result.
type RankedCandidate struct {
	CandidateID string      `json:"candidate_id"`
	Score       ScoreResult `json:"score"`
}

// RankedList is an ordered ranking of candidates for one job version,
// sorted by overall score descending with ties broken by ascending
// candidate identifier. Never mutated after construction.
type RankedList struct {
	JobID      string            `json:"job_id"`
	JobVersion int               `json:"job_version"`
	Ranked     []RankedCandidate `json:"ranked"`
}

// CandidateError records a candidate excluded from a ranking and why.
// One bad record never aborts ranking of the rest.
type CandidateError struct {
	CandidateID string `json:"candidate_id"`
	Err         error  `json:"-"`
	Reason      string `json:"reason"`
}
