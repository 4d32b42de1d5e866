package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireai/internal/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "default", cfg.Version)
	assert.Equal(t, 4.0, cfg.ExperienceScale)
	assert.Positive(t, cfg.Concurrency)

	total := 0.0
	for _, w := range cfg.Weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestLoadConfig_OverridesAndDefaults(t *testing.T) {
	path := writeConfigFile(t, `{
		"version": "v2",
		"weights": {"skill_overlap": 1.0, "text_similarity": 0.5},
		"experience_scale": 6
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "v2", cfg.Version)
	assert.Equal(t, 6.0, cfg.ExperienceScale)
	// The weights map replaces the default map wholesale.
	assert.Equal(t, map[string]float64{"skill_overlap": 1.0, "text_similarity": 0.5}, cfg.Weights)
	// Unset fields come from defaults.
	assert.Equal(t, types.KnownEducationLevels(), cfg.EducationLevels)
	assert.Positive(t, cfg.Concurrency)
}

func TestLoadConfig_ExplicitZeroWeightPreserved(t *testing.T) {
	path := writeConfigFile(t, `{"weights": {"skill_overlap": 1.0, "location_match": 0}}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	w, ok := cfg.Weights["location_match"]
	require.True(t, ok)
	assert.Equal(t, 0.0, w)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `{"weights": `))
		require.Error(t, err)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := LoadConfig(writeConfigFile(t, `{"weights": {"skill_overlap": -1}}`))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero experience scale",
			mutate:  func(c *Config) { c.ExperienceScale = 0 },
			wantErr: "experience_scale",
		},
		{
			name:    "negative concurrency",
			mutate:  func(c *Config) { c.Concurrency = -1 },
			wantErr: "concurrency",
		},
		{
			name:    "no education levels",
			mutate:  func(c *Config) { c.EducationLevels = nil },
			wantErr: "education_levels",
		},
		{
			name: "duplicate education level",
			mutate: func(c *Config) {
				c.EducationLevels = append(c.EducationLevels, types.EducationBachelor)
			},
			wantErr: "duplicate education level",
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.Weights["skill_overlap"] = -0.1 },
			wantErr: "non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEducationRanks(t *testing.T) {
	ranks := DefaultConfig().EducationRanks()

	assert.Equal(t, 0, ranks[types.EducationNone])
	assert.Equal(t, 2, ranks[types.EducationBachelor])
	assert.Equal(t, 4, ranks[types.EducationDoctorate])
}

func TestSnapshot(t *testing.T) {
	snap := NewSnapshot(DefaultConfig())
	assert.Equal(t, "default", snap.Load().Version)

	next := DefaultConfig()
	next.Version = "v2"
	require.NoError(t, snap.Swap(next))
	assert.Equal(t, "v2", snap.Load().Version)
}

func TestSnapshot_RejectsInvalidSwap(t *testing.T) {
	snap := NewSnapshot(DefaultConfig())

	bad := DefaultConfig()
	bad.ExperienceScale = -1
	require.Error(t, snap.Swap(bad))

	// The previous snapshot stays in place.
	assert.Equal(t, "default", snap.Load().Version)
}
