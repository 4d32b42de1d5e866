package store

import (
	"context"
	"fmt"
)

// ddl creates the tables the store expects. Kept idempotent so the CLI
// can run it at startup against a fresh database.
const ddl = `
CREATE TABLE IF NOT EXISTS candidates (
	id            TEXT PRIMARY KEY,
	profile       JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	corrected_at  TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS job_versions (
	id          TEXT NOT NULL,
	version     INTEGER NOT NULL,
	requirement JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (id, version)
);

CREATE TABLE IF NOT EXISTS rankings (
	id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	job_id         TEXT NOT NULL,
	job_version    INTEGER NOT NULL,
	config_version TEXT NOT NULL,
	result         JSONB NOT NULL,
	excluded       JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsureSchema creates the required tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
