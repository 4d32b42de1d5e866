// Package ranking orders candidates against a job requirement by running
// the validate, extract, score pipeline per candidate and sorting the
// results deterministically.
package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hireai/internal/config"
	"github.com/jonathan/hireai/internal/features"
	"github.com/jonathan/hireai/internal/judge"
	"github.com/jonathan/hireai/internal/schema"
	"github.com/jonathan/hireai/internal/scoring"
	"github.com/jonathan/hireai/internal/types"
)

// Ranker evaluates candidates against jobs. It holds only immutable
// configuration after construction and is safe for concurrent use.
type Ranker struct {
	registry    *schema.Registry
	engine      *scoring.Engine
	params      features.Params
	concurrency int
	fitJudge    judge.Fit
}

// Option customizes a Ranker.
type Option func(*Ranker)

// WithJudge attaches an optional semantic-fit judge. Its score enters the
// vector as the semantic_fit feature; judge failures fall back to a
// neutral value and never exclude a candidate.
func WithJudge(j judge.Fit) Option {
	return func(r *Ranker) {
		r.fitJudge = j
	}
}

// New builds a Ranker from an immutable configuration snapshot. The
// weight configuration is validated against the feature set up front, so
// configuration drift fails here rather than mid-batch.
func New(cfg *config.Config, opts ...Option) (*Ranker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	concurrency := cfg.Concurrency
	if concurrency == 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	r := &Ranker{
		registry: schema.NewRegistry(),
		params: features.Params{
			ExperienceScale: cfg.ExperienceScale,
			EducationRanks:  cfg.EducationRanks(),
		},
		concurrency: concurrency,
	}
	for _, opt := range opts {
		opt(r)
	}

	available := features.Names()
	if r.fitJudge != nil {
		available = append(available, features.SemanticFit)
	}

	engine, err := scoring.NewEngine(cfg.Weights, available)
	if err != nil {
		return nil, err
	}
	r.engine = engine

	return r, nil
}

// Rank validates, extracts, and scores every candidate against the job,
// then returns the ordered list plus an error record per excluded
// candidate. A malformed candidate never aborts the batch; a malformed
// job does, since nothing can be ranked against it.
//
// Candidates are evaluated concurrently with no ordering requirement;
// global order is re-established by the final sort: overall score
// descending, ties broken by ascending candidate identifier.
func (r *Ranker) Rank(ctx context.Context, job types.JobRequirement, candidates []types.CandidateProfile) (*types.RankedList, []types.CandidateError, error) {
	normalizedJob, err := r.registry.ValidateJob(job)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid job requirement: %w", err)
	}

	results := make([]*types.RankedCandidate, len(candidates))
	failures := make([]*types.CandidateError, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			candidate := candidates[i]
			ranked, err := r.evaluate(gCtx, candidate, &normalizedJob)
			if err != nil {
				failures[i] = &types.CandidateError{
					CandidateID: candidate.ID,
					Err:         err,
					Reason:      err.Error(),
				}
				return nil
			}
			results[i] = ranked
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	ranked := make([]types.RankedCandidate, 0, len(candidates))
	for _, res := range results {
		if res != nil {
			ranked = append(ranked, *res)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score.Overall != ranked[j].Score.Overall {
			return ranked[i].Score.Overall > ranked[j].Score.Overall
		}
		return ranked[i].CandidateID < ranked[j].CandidateID
	})

	var errs []types.CandidateError
	for _, f := range failures {
		if f != nil {
			errs = append(errs, *f)
		}
	}
	sort.Slice(errs, func(i, j int) bool {
		return errs[i].CandidateID < errs[j].CandidateID
	})

	return &types.RankedList{
		JobID:      normalizedJob.ID,
		JobVersion: normalizedJob.Version,
		Ranked:     ranked,
	}, errs, nil
}

// evaluate runs one candidate through the pipeline.
func (r *Ranker) evaluate(ctx context.Context, candidate types.CandidateProfile, job *types.JobRequirement) (*types.RankedCandidate, error) {
	normalized, err := r.registry.ValidateCandidate(candidate)
	if err != nil {
		return nil, err
	}

	vector := features.Extract(&normalized, job, r.params)

	if r.fitJudge != nil {
		// Neutral fallback keeps failed judgments from distorting the
		// comparison against candidates that were judged.
		fit := 0.5
		if result, err := r.fitJudge.JudgeFit(ctx, &normalized, job); err == nil {
			fit = result.Score
		}
		vector.Values[features.SemanticFit] = fit
	}

	score, err := r.engine.Score(vector)
	if err != nil {
		return nil, err
	}

	return &types.RankedCandidate{
		CandidateID: normalized.ID,
		Score:       score,
	}, nil
}
