// Package features converts a (candidate, job) pair into a fixed set of
// named, bounded numeric signals. Extraction is a pure function: no side
// effects, deterministic for identical normalized inputs.
package features

import (
	"math"

	"github.com/jonathan/hireai/internal/types"
)

// Feature names produced by Extract. The scoring engine validates its
// weight configuration against this set.
const (
	SkillOverlap    = "skill_overlap"
	ExperienceDelta = "experience_delta"
	EducationMatch  = "education_match"
	LocationMatch   = "location_match"
	TextSimilarity  = "text_similarity"

	// SemanticFit is the optional auxiliary signal contributed by a fit
	// judge. It is not produced by Extract itself.
	SemanticFit = "semantic_fit"
)

// Names returns the deterministic feature set produced by Extract.
func Names() []string {
	return []string{SkillOverlap, ExperienceDelta, EducationMatch, LocationMatch, TextSimilarity}
}

// Params carries the immutable extraction parameters derived from the
// engine configuration.
type Params struct {
	// ExperienceScale is the surplus in years that saturates the
	// experience feature. Must be positive.
	ExperienceScale float64
	// EducationRanks orders education levels; higher rank means higher
	// attainment.
	EducationRanks map[types.EducationLevel]int
}

// Extract computes the feature vector for one normalized candidate
// against one normalized job requirement.
func Extract(candidate *types.CandidateProfile, job *types.JobRequirement, p Params) types.FeatureVector {
	candidateSkills := candidate.SkillSet()

	vector := types.FeatureVector{
		Values: map[string]float64{
			SkillOverlap:    skillOverlap(candidateSkills, job),
			ExperienceDelta: experienceScore(candidate.Experience, job.MinExperience, p.ExperienceScale),
			EducationMatch:  educationScore(candidate.Education, job.MinEducation, p.EducationRanks),
			LocationMatch:   locationScore(candidate.Location, job),
			TextSimilarity:  textScore(candidate.RawText, job.RawText),
		},
	}

	for _, name := range job.MustHaveSkills() {
		if !candidateSkills[name] {
			vector.MustHaveViolation = true
			vector.MissingMustHaves = append(vector.MissingMustHaves, name)
		}
	}

	return vector
}

// skillOverlap is |required ∩ candidate| / |required|. A job with no
// required skills matches everyone, so the ratio is defined as 1.0.
func skillOverlap(candidateSkills map[string]bool, job *types.JobRequirement) float64 {
	if len(job.Skills) == 0 {
		return 1.0
	}
	matched := 0
	for _, req := range job.Skills {
		if candidateSkills[req.Name] {
			matched++
		}
	}
	return float64(matched) / float64(len(job.Skills))
}

// experienceScore squashes the surplus (candidate years minus job
// minimum) into [0,1]. The surplus is normalized by scale, clamped at -1,
// and passed through a saturating exponential: a deficit at the clamp
// scores 0, meeting the minimum scores 1-1/e, and surplus saturates
// toward 1.
func experienceScore(candidateYears, minYears, scale float64) float64 {
	normalized := (candidateYears - minYears) / scale
	if normalized < -1 {
		normalized = -1
	}
	return 1 - math.Exp(-(normalized + 1))
}

// educationScore is 1 when the candidate meets or exceeds the required
// level on the ordinal, otherwise a fractional penalty proportional to
// the gap.
func educationScore(candidate, required types.EducationLevel, ranks map[types.EducationLevel]int) float64 {
	candidateRank := ranks[candidate]
	requiredRank := ranks[required]
	if candidateRank >= requiredRank {
		return 1.0
	}

	maxRank := 0
	for _, r := range ranks {
		if r > maxRank {
			maxRank = r
		}
	}
	if maxRank == 0 {
		return 1.0
	}

	gap := requiredRank - candidateRank
	return 1.0 - float64(gap)/float64(maxRank)
}

// locationScore is 1 when the candidate location is in the job's accepted
// set. A missing location on either side is treated as a match: no
// constraint is enforceable, and incomplete data is not penalized.
func locationScore(candidateLocation string, job *types.JobRequirement) float64 {
	if candidateLocation == "" || len(job.Locations) == 0 {
		return 1.0
	}
	if job.LocationSet()[candidateLocation] {
		return 1.0
	}
	return 0.0
}

// textScore compares the retained raw source texts. Missing text on
// either side yields a neutral 0.5 rather than a penalty.
func textScore(candidateText, jobText string) float64 {
	if candidateText == "" || jobText == "" {
		return 0.5
	}
	return Similarity(candidateText, jobText)
}
