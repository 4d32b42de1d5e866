// Package judge provides the optional semantic-fit signal: a bounded,
// normalized score contributed by an LLM as one named feature alongside
// the deterministic ones, never as the sole scoring mechanism.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/hireai/internal/llm"
	"github.com/jonathan/hireai/internal/types"
)

// Fit judges how well a candidate fits a job and returns a score in
// [0,1]. Implementations may call external services; failures are
// recovered by the ranker, which falls back to a neutral value.
type Fit interface {
	JudgeFit(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement) (FitResult, error)
}

// FitResult carries the bounded fit score and the judge's reasoning.
type FitResult struct {
	Score     float64 `json:"fit_score"`
	Reasoning string  `json:"reasoning,omitempty"`
}

// GeminiJudge implements Fit with a Gemini model.
type GeminiJudge struct {
	client llm.Client
}

// NewGeminiJudge wraps an LLM client as a fit judge.
func NewGeminiJudge(client llm.Client) *GeminiJudge {
	return &GeminiJudge{client: client}
}

const fitPromptTemplate = `You are evaluating how well a candidate fits a job requirement.

Job requirements:
- Skills: %s
- Minimum experience: %.1f years
- Minimum education: %s
- Seniority: %s

Candidate:
- Skills: %s
- Experience: %.1f years
- Education: %s

Respond with JSON only, no prose:
{"fit_score": <number between 0.0 and 1.0>, "reasoning": "<one sentence>"}`

// JudgeFit asks the model for a fit score and clamps the response to
// [0,1].
func (j *GeminiJudge) JudgeFit(ctx context.Context, candidate *types.CandidateProfile, job *types.JobRequirement) (FitResult, error) {
	prompt := buildFitPrompt(candidate, job)

	raw, err := j.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return FitResult{}, fmt.Errorf("fit judgment failed: %w", err)
	}

	raw = llm.CleanJSONBlock(raw)

	var result FitResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return FitResult{}, fmt.Errorf("failed to parse fit response: %w (content: %s)", err, raw)
	}

	if result.Score < 0.0 {
		result.Score = 0.0
	}
	if result.Score > 1.0 {
		result.Score = 1.0
	}
	return result, nil
}

func buildFitPrompt(candidate *types.CandidateProfile, job *types.JobRequirement) string {
	var reqSkills []string
	for _, s := range job.Skills {
		name := s.Name
		if s.MustHave {
			name += " (must-have)"
		}
		reqSkills = append(reqSkills, name)
	}

	return fmt.Sprintf(fitPromptTemplate,
		orUnspecified(strings.Join(reqSkills, ", ")),
		job.MinExperience,
		orUnspecified(string(job.MinEducation)),
		orUnspecified(job.Seniority),
		orUnspecified(strings.Join(candidate.Skills, ", ")),
		candidate.Experience,
		orUnspecified(string(candidate.Education)),
	)
}

func orUnspecified(s string) string {
	if s == "" {
		return "not specified"
	}
	return s
}
