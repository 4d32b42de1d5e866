package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/hireai/internal/config"
	"github.com/jonathan/hireai/internal/features"
	"github.com/jonathan/hireai/internal/judge"
	"github.com/jonathan/hireai/internal/llm"
	"github.com/jonathan/hireai/internal/logger"
	"github.com/jonathan/hireai/internal/ranking"
	"github.com/jonathan/hireai/internal/schema"
	"github.com/jonathan/hireai/internal/types"
)

var (
	flagJobFile        string
	flagCandidatesFile string
	flagOutput         string
	flagAPIKey         string
	flagSave           bool
)

// rankOutput is the JSON document the rank command writes: the ranking
// plus every excluded candidate with its reason. Nothing is dropped
// silently.
type rankOutput struct {
	Ranking  *types.RankedList      `json:"ranking"`
	Excluded []types.CandidateError `json:"excluded"`
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against a job requirement",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&flagJobFile, "job", "", "Path to job requirement JSON (required)")
	rankCmd.Flags().StringVar(&flagCandidatesFile, "candidates", "", "Path to candidates JSON array (required)")
	rankCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write result JSON to file instead of stdout")
	rankCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key enabling the semantic_fit feature (or GEMINI_API_KEY)")
	rankCmd.Flags().BoolVar(&flagSave, "save", false, "Persist the ranking snapshot (requires DATABASE_URL)")
	_ = rankCmd.MarkFlagRequired("job")
	_ = rankCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	log, err := logger.New(flagJSONLogs, flagVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadEngineConfig()
	if err != nil {
		return err
	}

	job, err := loadJob(flagJobFile)
	if err != nil {
		return err
	}

	candidates, malformed, err := loadCandidates(flagCandidatesFile)
	if err != nil {
		return err
	}

	var opts []ranking.Option
	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, apiKey, "")
		if err != nil {
			return fmt.Errorf("failed to initialize fit judge: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts = append(opts, ranking.WithJudge(judge.NewGeminiJudge(client)))
		if semanticFitWeighted(cfg) {
			log.Info("semantic_fit feature enabled")
		} else {
			log.Warn("judge enabled but semantic_fit carries no weight; judgments will not affect scores")
		}
	}

	ranker, err := ranking.New(cfg, opts...)
	if err != nil {
		return err
	}

	list, excluded, err := ranker.Rank(ctx, *job, candidates)
	if err != nil {
		return err
	}
	excluded = append(malformed, excluded...)

	log.Info("ranking complete",
		zap.String("job_id", list.JobID),
		zap.Int("job_version", list.JobVersion),
		zap.Int("ranked", len(list.Ranked)),
		zap.Int("excluded", len(excluded)),
	)

	if flagSave {
		if err := saveRanking(ctx, log, cfg, list, excluded); err != nil {
			return err
		}
	}

	return writeOutput(rankOutput{Ranking: list, Excluded: excluded})
}

// semanticFitWeighted reports whether the configuration gives the
// judge's feature any influence on the overall score.
func semanticFitWeighted(cfg *config.Config) bool {
	return cfg.Weights[features.SemanticFit] > 0
}

func loadEngineConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(flagConfig)
}

// loadJob reads and schema-checks the job requirement file.
func loadJob(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schema.ValidateDocument(schema.JobSchema, string(data)); err != nil {
		return nil, err
	}
	var job types.JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}

// loadCandidates reads a JSON array of candidate records. Records failing
// the embedded schema are reported, not fatal: the rest of the batch
// still ranks.
func loadCandidates(path string) ([]types.CandidateProfile, []types.CandidateError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse candidates JSON array: %w", err)
	}

	var candidates []types.CandidateProfile
	var malformed []types.CandidateError
	for i, record := range raw {
		if err := schema.ValidateDocument(schema.CandidateSchema, string(record)); err != nil {
			malformed = append(malformed, types.CandidateError{
				CandidateID: recordID(record, i),
				Err:         err,
				Reason:      err.Error(),
			})
			continue
		}
		var candidate types.CandidateProfile
		if err := json.Unmarshal(record, &candidate); err != nil {
			malformed = append(malformed, types.CandidateError{
				CandidateID: recordID(record, i),
				Err:         err,
				Reason:      err.Error(),
			})
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, malformed, nil
}

// recordID pulls the identifier out of a raw record for error
// attribution, falling back to the array position.
func recordID(record json.RawMessage, index int) string {
	var partial struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(record, &partial); err == nil && partial.ID != "" {
		return partial.ID
	}
	return fmt.Sprintf("record[%d]", index)
}

func saveRanking(ctx context.Context, log *zap.Logger, cfg *config.Config, list *types.RankedList, excluded []types.CandidateError) error {
	db, err := connectStore(ctx)
	if err != nil {
		return fmt.Errorf("--save: %w", err)
	}
	defer db.Close()

	id, err := db.SaveRanking(ctx, list, excluded, cfg.Version)
	if err != nil {
		return err
	}
	log.Info("ranking snapshot saved", zap.String("snapshot_id", id.String()))
	return nil
}

func writeOutput(out rankOutput) error {
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	encoded = append(encoded, '\n')

	if flagOutput == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(flagOutput, encoded, 0o644)
}
