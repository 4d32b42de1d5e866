package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/hireai/internal/features"
	"github.com/jonathan/hireai/internal/types"
)

// buildNotes creates a brief explanation of the score for human review.
func buildNotes(result *types.ScoreResult, vector types.FeatureVector) string {
	if result.MustHaveViolation {
		return fmt.Sprintf("Missing must-have skill(s): %s", strings.Join(result.MissingMustHaves, ", "))
	}

	var parts []string

	if overlap, ok := vector.Get(features.SkillOverlap); ok {
		switch {
		case overlap >= 0.7:
			parts = append(parts, "Strong skill match")
		case overlap >= 0.4:
			parts = append(parts, "Moderate skill match")
		case overlap > 0:
			parts = append(parts, "Weak skill match")
		default:
			parts = append(parts, "No skill matches")
		}
	}

	if exp, ok := vector.Get(features.ExperienceDelta); ok {
		if exp >= 0.6 {
			parts = append(parts, "meets experience requirement")
		} else {
			parts = append(parts, "below experience requirement")
		}
	}

	if edu, ok := vector.Get(features.EducationMatch); ok && edu < 1.0 {
		parts = append(parts, "education below requirement")
	}

	if loc, ok := vector.Get(features.LocationMatch); ok && loc == 0 {
		parts = append(parts, "location mismatch")
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ")
}
