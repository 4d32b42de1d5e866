// Package store provides PostgreSQL persistence for candidate profiles,
// versioned job requirements, and ranking snapshots. The ranking core
// never depends on this package; it is wired at the CLI boundary.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/hireai/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveCandidate stores a normalized candidate profile. Profiles are
// immutable after ingestion, so an existing identifier is left untouched.
func (s *Store) SaveCandidate(ctx context.Context, candidate *types.CandidateProfile) error {
	profileJSON, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO candidates (id, profile)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO NOTHING`,
		candidate.ID, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// CorrectCandidate overwrites an existing profile. This is the
// administrative-correction path; normal ingestion never updates.
func (s *Store) CorrectCandidate(ctx context.Context, candidate *types.CandidateProfile) error {
	profileJSON, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE candidates SET profile = $2, corrected_at = NOW() WHERE id = $1`,
		candidate.ID, profileJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to correct candidate %s: %w", candidate.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s not found", candidate.ID)
	}
	return nil
}

// GetCandidate retrieves a candidate profile. Returns nil when the
// identifier is unknown.
func (s *Store) GetCandidate(ctx context.Context, id string) (*types.CandidateProfile, error) {
	var profileJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT profile FROM candidates WHERE id = $1`, id,
	).Scan(&profileJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(profileJSON, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	return &candidate, nil
}

// ListCandidates retrieves all stored candidate profiles.
func (s *Store) ListCandidates(ctx context.Context) ([]types.CandidateProfile, error) {
	rows, err := s.pool.Query(ctx, `SELECT profile FROM candidates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		var profileJSON []byte
		if err := rows.Scan(&profileJSON); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		var candidate types.CandidateProfile
		if err := json.Unmarshal(profileJSON, &candidate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	return candidates, rows.Err()
}

// SaveJobVersion inserts the next version of a job requirement and
// returns the requirement with its assigned version. Versions are
// insert-only: edits never mutate a stored version, so historical
// rankings stay reproducible.
func (s *Store) SaveJobVersion(ctx context.Context, job *types.JobRequirement) (*types.JobRequirement, error) {
	versioned := *job

	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM job_versions WHERE id = $1`,
		job.ID,
	).Scan(&versioned.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate job version: %w", err)
	}

	requirementJSON, err := json.Marshal(&versioned)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job requirement: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO job_versions (id, version, requirement) VALUES ($1, $2, $3)`,
		versioned.ID, versioned.Version, requirementJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save job %s version %d: %w", versioned.ID, versioned.Version, err)
	}
	return &versioned, nil
}

// GetJobVersion retrieves one specific version of a job requirement.
// Returns nil when not found.
func (s *Store) GetJobVersion(ctx context.Context, id string, version int) (*types.JobRequirement, error) {
	var requirementJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT requirement FROM job_versions WHERE id = $1 AND version = $2`,
		id, version,
	).Scan(&requirementJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s version %d: %w", id, version, err)
	}

	var job types.JobRequirement
	if err := json.Unmarshal(requirementJSON, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", id, err)
	}
	return &job, nil
}

// GetLatestJob retrieves the newest version of a job requirement.
// Returns nil when the identifier is unknown.
func (s *Store) GetLatestJob(ctx context.Context, id string) (*types.JobRequirement, error) {
	var requirementJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT requirement FROM job_versions WHERE id = $1 ORDER BY version DESC LIMIT 1`,
		id,
	).Scan(&requirementJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job %s: %w", id, err)
	}

	var job types.JobRequirement
	if err := json.Unmarshal(requirementJSON, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", id, err)
	}
	return &job, nil
}

// SaveRanking stores a ranking snapshot together with its excluded
// candidates and the configuration version that produced it, and returns
// the snapshot identifier.
func (s *Store) SaveRanking(ctx context.Context, list *types.RankedList, errs []types.CandidateError, configVersion string) (uuid.UUID, error) {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal ranking: %w", err)
	}
	errsJSON, err := json.Marshal(errs)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal ranking errors: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO rankings (job_id, job_version, config_version, result, excluded)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		list.JobID, list.JobVersion, configVersion, listJSON, errsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save ranking: %w", err)
	}
	return id, nil
}
