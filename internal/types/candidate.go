// Package types provides type definitions for structured data used throughout the hireai system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EducationLevel is the highest education level attained by a candidate,
// ordered from none (lowest) to doctorate (highest).
type EducationLevel string

// Recognized education levels. Unknown values are rejected at validation
// time, never coerced.
const (
	EducationNone      EducationLevel = "none"
	EducationAssociate EducationLevel = "associate"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

// KnownEducationLevels lists the valid levels in ascending order.
func KnownEducationLevels() []EducationLevel {
	return []EducationLevel{
		EducationNone,
		EducationAssociate,
		EducationBachelor,
		EducationMaster,
		EducationDoctorate,
	}
}

// CandidateProfile represents a structured candidate record produced by
// upstream parsing collaborators. Profiles are immutable after ingestion;
// RawText is retained verbatim for audit.
type CandidateProfile struct {
	ID         string         `json:"id" validate:"required,min=1"`
	Skills     []string       `json:"skills"`
	Experience float64        `json:"experience_years" validate:"gte=0"`
	Education  EducationLevel `json:"education"`
	Location   string         `json:"location,omitempty"`
	RawText    string         `json:"raw_text,omitempty"`
}

// SkillSet returns the candidate skills as a lookup set. Skills are
// expected to be normalized already (lower-cased, trimmed, deduplicated).
func (c *CandidateProfile) SkillSet() map[string]bool {
	set := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		set[s] = true
	}
	return set
}
