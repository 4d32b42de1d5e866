package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/hireai/internal/logger"
	"github.com/jonathan/hireai/internal/schema"
	"github.com/jonathan/hireai/internal/store"
)

var (
	flagIngestJob     string
	flagIngestCorrect bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Persist candidate profiles and job requirement versions",
	Long:  "Validates and normalizes records before storing them. Candidates are immutable after ingestion; re-ingesting an existing identifier is a no-op unless --correct is set. Jobs always get a new version.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&flagCandidatesFile, "candidates", "", "Path to candidates JSON array")
	ingestCmd.Flags().StringVar(&flagIngestJob, "job", "", "Path to job requirement JSON")
	ingestCmd.Flags().BoolVar(&flagIngestCorrect, "correct", false, "Overwrite existing candidate profiles (administrative correction)")
	rootCmd.AddCommand(ingestCmd)
}

// connectStore opens the store from DATABASE_URL.
func connectStore(ctx context.Context) (*store.Store, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if flagCandidatesFile == "" && flagIngestJob == "" {
		return fmt.Errorf("nothing to ingest: pass --candidates and/or --job")
	}

	ctx := cmd.Context()

	log, err := logger.New(flagJSONLogs, flagVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := schema.NewRegistry()

	if flagCandidatesFile != "" {
		candidates, malformed, err := loadCandidates(flagCandidatesFile)
		if err != nil {
			return err
		}
		for _, m := range malformed {
			log.Warn("skipping malformed candidate", zap.String("candidate_id", m.CandidateID), zap.String("reason", m.Reason))
		}

		stored := 0
		for i := range candidates {
			normalized, err := registry.ValidateCandidate(candidates[i])
			if err != nil {
				log.Warn("skipping candidate", zap.String("candidate_id", candidates[i].ID), zap.Error(err))
				continue
			}
			if flagIngestCorrect {
				err = db.CorrectCandidate(ctx, &normalized)
			} else {
				err = db.SaveCandidate(ctx, &normalized)
			}
			if err != nil {
				return err
			}
			stored++
		}
		log.Info("candidates ingested", zap.Int("stored", stored), zap.Int("skipped", len(candidates)-stored+len(malformed)))
	}

	if flagIngestJob != "" {
		job, err := loadJob(flagIngestJob)
		if err != nil {
			return err
		}
		normalized, err := registry.ValidateJob(*job)
		if err != nil {
			return err
		}
		versioned, err := db.SaveJobVersion(ctx, &normalized)
		if err != nil {
			return err
		}
		log.Info("job version saved", zap.String("job_id", versioned.ID), zap.Int("version", versioned.Version))
	}

	return nil
}

var flagShowVersion int

var showCmd = &cobra.Command{
	Use:   "show (candidate <id> | candidates | job <id>)",
	Short: "Print stored records",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowVersion, "job-version", 0, "Specific job version (latest when omitted)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := connectStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var record any
	switch args[0] {
	case "candidate":
		if len(args) != 2 {
			return fmt.Errorf("usage: show candidate <id>")
		}
		candidate, err := db.GetCandidate(ctx, args[1])
		if err != nil {
			return err
		}
		if candidate == nil {
			return fmt.Errorf("candidate %s not found", args[1])
		}
		record = candidate
	case "candidates":
		candidates, err := db.ListCandidates(ctx)
		if err != nil {
			return err
		}
		record = candidates
	case "job":
		if len(args) != 2 {
			return fmt.Errorf("usage: show job <id>")
		}
		job, err := loadStoredJob(ctx, db, args[1], flagShowVersion)
		if err != nil {
			return err
		}
		record = job
	default:
		return fmt.Errorf("unknown record kind %q (want candidate, candidates, or job)", args[0])
	}

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func loadStoredJob(ctx context.Context, db *store.Store, id string, version int) (any, error) {
	if version > 0 {
		job, err := db.GetJobVersion(ctx, id, version)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, fmt.Errorf("job %s version %d not found", id, version)
		}
		return job, nil
	}

	job, err := db.GetLatestJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("job %s not found", id)
	}
	return job, nil
}
