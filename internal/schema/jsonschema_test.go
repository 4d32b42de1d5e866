package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hireai/internal/types"
)

func TestValidateDocument_ValidCandidate(t *testing.T) {
	doc := `{"id": "cand_001", "skills": ["go"], "experience_years": 4, "education": "bachelor"}`

	assert.NoError(t, ValidateDocument(CandidateSchema, doc))
}

func TestValidateDocument_CandidateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", `{"skills": ["go"]}`},
		{"negative experience", `{"id": "c1", "experience_years": -1}`},
		{"non-string education", `{"id": "c1", "education": 3}`},
		{"unexpected field", `{"id": "c1", "salary": 100}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(CandidateSchema, tt.doc)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestValidateDocument_EducationCaseDeferredToRegistry(t *testing.T) {
	// Education values pass document validation regardless of case; the
	// registry lower-cases and checks them, so both ingestion paths
	// accept the same records.
	doc := `{"id": "cand_001", "education": "Bachelor"}`
	require.NoError(t, ValidateDocument(CandidateSchema, doc))

	normalized, err := NewRegistry().ValidateCandidate(types.CandidateProfile{
		ID:        "cand_001",
		Education: "Bachelor",
	})
	require.NoError(t, err)
	assert.Equal(t, types.EducationBachelor, normalized.Education)
}

func TestValidateDocument_ValidJob(t *testing.T) {
	doc := `{
		"id": "job_001",
		"version": 1,
		"skills": [{"name": "python", "must_have": true}, {"name": "sql"}],
		"min_experience_years": 3,
		"min_education": "bachelor",
		"locations": ["berlin"]
	}`

	assert.NoError(t, ValidateDocument(JobSchema, doc))
}

func TestValidateDocument_JobMissingSkillName(t *testing.T) {
	doc := `{"id": "job_001", "skills": [{"must_have": true}]}`

	var schemaErr *SchemaError
	require.ErrorAs(t, ValidateDocument(JobSchema, doc), &schemaErr)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("resume", `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
