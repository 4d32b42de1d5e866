// Package config provides the explicit configuration object for the
// ranking engine. Configuration is loaded once, validated, and treated as
// immutable; nothing in the core reads ambient global state at call time.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/jonathan/hireai/internal/types"
)

// Config holds the full configuration surface of the ranking engine:
// feature weights, education-level ordering, the experience scale factor,
// and ranking concurrency. All fields are optional in the JSON file;
// missing values use defaults.
type Config struct {
	// Version labels this configuration snapshot for reproducibility.
	Version string `json:"version,omitempty"`

	// Weights maps feature names to non-negative weights. The scoring
	// engine normalizes by the weight total, so only ratios matter.
	Weights map[string]float64 `json:"weights,omitempty"`

	// EducationLevels orders education levels ascending. Defaults to
	// none < associate < bachelor < master < doctorate.
	EducationLevels []types.EducationLevel `json:"education_levels,omitempty"`

	// ExperienceScale is the number of surplus years that saturates the
	// experience feature. Must be positive.
	ExperienceScale float64 `json:"experience_scale,omitempty"`

	// Concurrency bounds parallel candidate evaluation during ranking.
	// Zero means one worker per CPU.
	Concurrency int `json:"concurrency,omitempty"`
}

// defaultWeights returns the default feature weights. Ratios follow the
// original scoring model: skills dominate, experience and education next,
// location and raw-text similarity as secondary signals.
func defaultWeights() map[string]float64 {
	return map[string]float64{
		"skill_overlap":    0.45,
		"experience_delta": 0.20,
		"education_match":  0.15,
		"location_match":   0.10,
		"text_similarity":  0.10,
	}
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:         "default",
		Weights:         defaultWeights(),
		EducationLevels: types.KnownEducationLevels(),
		ExperienceScale: 4.0,
		Concurrency:     runtime.GOMAXPROCS(0),
	}
}

// LoadConfig loads configuration from a JSON file and fills missing
// fields from defaults. Returns an error if the file cannot be read or
// parsed, or if the result fails validation.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	merged := cfg.MergeWithDefaults(*DefaultConfig())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has usable values. Weight-total
// checks belong to the scoring engine, which needs the final feature set.
func (c *Config) Validate() error {
	if c.ExperienceScale <= 0 {
		return fmt.Errorf("config error: 'experience_scale' must be positive")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if len(c.EducationLevels) == 0 {
		return fmt.Errorf("config error: 'education_levels' must not be empty")
	}
	seen := make(map[types.EducationLevel]bool, len(c.EducationLevels))
	for _, level := range c.EducationLevels {
		if seen[level] {
			return fmt.Errorf("config error: duplicate education level %q", level)
		}
		seen[level] = true
	}
	for name, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("config error: weight for %q must be non-negative", name)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. A weights map present in the file replaces the default map
// wholesale so that explicit zero weights are preserved.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Version == "" {
		result.Version = defaults.Version
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if len(result.EducationLevels) == 0 {
		result.EducationLevels = defaults.EducationLevels
	}
	if result.ExperienceScale == 0 {
		result.ExperienceScale = defaults.ExperienceScale
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	return result
}

// EducationRanks derives the ordinal rank of each configured level,
// starting at 0 for the lowest.
func (c *Config) EducationRanks() map[types.EducationLevel]int {
	ranks := make(map[types.EducationLevel]int, len(c.EducationLevels))
	for i, level := range c.EducationLevels {
		ranks[level] = i
	}
	return ranks
}
