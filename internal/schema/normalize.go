package schema

import "strings"

// skillAliases maps common skill name variants to canonical lower-case names
var skillAliases = map[string]string{
	"golang":              "go",
	"go lang":             "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"nodejs":              "node.js",
	"node":                "node.js",
	"postgres":            "postgresql",
	"amazon web services": "aws",
}

// NormalizeSkillName lower-cases and trims a skill name and resolves
// known variants to their canonical form. Returns "" for blank input.
func NormalizeSkillName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkills normalizes and deduplicates a skill list, preserving
// first-seen order.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		normalized := NormalizeSkillName(s)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// NormalizeLocation lower-cases and trims a location string. Locations
// are matched as opaque tokens; geocoding belongs to upstream collaborators.
func NormalizeLocation(loc string) string {
	return strings.ToLower(strings.TrimSpace(loc))
}
