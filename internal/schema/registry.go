// Package schema validates and normalizes candidate and job records
// before they enter the ranking pipeline.
package schema

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/hireai/internal/types"
)

// Registry validates records against the declared shapes and returns
// normalized copies. It holds no mutable state after construction and is
// safe for concurrent use.
type Registry struct {
	validate    *validator.Validate
	knownLevels map[types.EducationLevel]bool
}

// NewRegistry builds a Registry recognizing the standard education levels.
func NewRegistry() *Registry {
	known := make(map[types.EducationLevel]bool)
	for _, level := range types.KnownEducationLevels() {
		known[level] = true
	}
	return &Registry{
		validate:    validator.New(),
		knownLevels: known,
	}
}

// ValidateCandidate checks a candidate record and returns a normalized
// copy: skills lower-cased, trimmed and deduplicated, location trimmed.
// Records with a missing identifier, negative experience, or an unknown
// education level fail with a *SchemaError naming the offending field.
// The original record is never mutated; RawText is carried through
// verbatim for audit.
func (r *Registry) ValidateCandidate(c types.CandidateProfile) (types.CandidateProfile, error) {
	if strings.TrimSpace(c.ID) == "" {
		return types.CandidateProfile{}, &SchemaError{Kind: "candidate", Field: "id", Message: "identifier is required"}
	}
	if c.Experience < 0 {
		return types.CandidateProfile{}, &SchemaError{Kind: "candidate", Field: "experience_years", Message: "must be non-negative"}
	}

	normalized := c
	normalized.ID = strings.TrimSpace(c.ID)
	normalized.Skills = NormalizeSkills(c.Skills)
	normalized.Location = NormalizeLocation(c.Location)
	normalized.Education = normalizeEducation(c.Education)

	if !r.knownLevels[normalized.Education] {
		return types.CandidateProfile{}, &SchemaError{
			Kind:    "candidate",
			Field:   "education",
			Message: "unknown education level " + string(c.Education),
		}
	}

	if err := r.validate.Struct(&normalized); err != nil {
		return types.CandidateProfile{}, toSchemaError("candidate", err)
	}

	return normalized, nil
}

// ValidateJob checks a job requirement record and returns a normalized
// copy. Skill names are normalized and deduplicated; a skill flagged
// must-have in any duplicate stays must-have. A zero version is defaulted
// to 1 for unversioned input; negative versions are rejected.
func (r *Registry) ValidateJob(j types.JobRequirement) (types.JobRequirement, error) {
	if strings.TrimSpace(j.ID) == "" {
		return types.JobRequirement{}, &SchemaError{Kind: "job", Field: "id", Message: "identifier is required"}
	}
	if j.Version < 0 {
		return types.JobRequirement{}, &SchemaError{Kind: "job", Field: "version", Message: "must be positive"}
	}
	if j.MinExperience < 0 {
		return types.JobRequirement{}, &SchemaError{Kind: "job", Field: "min_experience_years", Message: "must be non-negative"}
	}

	normalized := j
	normalized.ID = strings.TrimSpace(j.ID)
	if normalized.Version == 0 {
		normalized.Version = 1
	}
	normalized.MinEducation = normalizeEducation(j.MinEducation)

	if !r.knownLevels[normalized.MinEducation] {
		return types.JobRequirement{}, &SchemaError{
			Kind:    "job",
			Field:   "min_education",
			Message: "unknown education level " + string(j.MinEducation),
		}
	}

	seen := make(map[string]int)
	skills := make([]types.RequiredSkill, 0, len(j.Skills))
	for i, s := range j.Skills {
		name := NormalizeSkillName(s.Name)
		if name == "" {
			return types.JobRequirement{}, &SchemaError{
				Kind:    "job",
				Field:   "skills",
				Message: "blank skill name at index " + strconv.Itoa(i),
			}
		}
		if idx, exists := seen[name]; exists {
			if s.MustHave {
				skills[idx].MustHave = true
			}
			continue
		}
		seen[name] = len(skills)
		skills = append(skills, types.RequiredSkill{Name: name, MustHave: s.MustHave})
	}
	normalized.Skills = skills

	locations := make([]string, 0, len(j.Locations))
	locSeen := make(map[string]bool)
	for _, l := range j.Locations {
		loc := NormalizeLocation(l)
		if loc == "" || locSeen[loc] {
			continue
		}
		locSeen[loc] = true
		locations = append(locations, loc)
	}
	if len(locations) == 0 {
		locations = nil
	}
	normalized.Locations = locations
	normalized.Seniority = strings.ToLower(strings.TrimSpace(j.Seniority))

	if err := r.validate.Struct(&normalized); err != nil {
		return types.JobRequirement{}, toSchemaError("job", err)
	}

	return normalized, nil
}

// normalizeEducation trims and lower-cases a level; empty input means no
// data and maps to none rather than failing, matching the location policy
// of not penalizing incomplete records.
func normalizeEducation(level types.EducationLevel) types.EducationLevel {
	normalized := types.EducationLevel(strings.ToLower(strings.TrimSpace(string(level))))
	if normalized == "" {
		return types.EducationNone
	}
	return normalized
}

// toSchemaError converts a validator error into a *SchemaError naming the
// first offending field.
func toSchemaError(kind string, err error) error {
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &SchemaError{
			Kind:    kind,
			Field:   strings.ToLower(fe.Field()),
			Message: "failed constraint " + fe.Tag(),
		}
	}
	return &SchemaError{Kind: kind, Message: err.Error()}
}
