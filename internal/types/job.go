// Package types provides type definitions for structured data used throughout the hireai system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequiredSkill represents a single skill requirement on a job posting.
// Must-have skills force the lowest possible score when absent from a
// candidate; preferred skills only contribute to the overlap ratio.
type RequiredSkill struct {
	Name     string `json:"name" validate:"required,min=1"`
	MustHave bool   `json:"must_have,omitempty"`
}

// JobRequirement represents one version of a registered job posting.
// Edits never mutate a version in place; the store inserts a new version
// so historical rankings stay reproducible.
type JobRequirement struct {
	ID            string          `json:"id" validate:"required,min=1"`
	Version       int             `json:"version" validate:"gte=1"`
	Skills        []RequiredSkill `json:"skills"`
	MinExperience float64         `json:"min_experience_years" validate:"gte=0"`
	MinEducation  EducationLevel  `json:"min_education"`
	Locations     []string        `json:"locations,omitempty"`
	Seniority     string          `json:"seniority,omitempty"`
	RawText       string          `json:"raw_text,omitempty"`
}

// MustHaveSkills returns the normalized names of all skills flagged must-have.
func (j *JobRequirement) MustHaveSkills() []string {
	var names []string
	for _, s := range j.Skills {
		if s.MustHave {
			names = append(names, s.Name)
		}
	}
	return names
}

// LocationSet returns the accepted locations as a lookup set. An empty
// set means the job carries no location constraint.
func (j *JobRequirement) LocationSet() map[string]bool {
	set := make(map[string]bool, len(j.Locations))
	for _, l := range j.Locations {
		set[l] = true
	}
	return set
}
