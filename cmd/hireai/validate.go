package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hireai/internal/schema"
	"github.com/jonathan/hireai/internal/types"
)

var flagKind string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a candidate or job record file",
	Long:  "Validates a record against the embedded JSON Schema and the normalization rules, printing the normalized record on success.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagKind, "kind", schema.CandidateSchema, "Record kind: candidate or job")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if err := schema.ValidateDocument(flagKind, string(data)); err != nil {
		return err
	}

	registry := schema.NewRegistry()
	var normalized any

	switch flagKind {
	case schema.CandidateSchema:
		var candidate types.CandidateProfile
		if err := json.Unmarshal(data, &candidate); err != nil {
			return fmt.Errorf("failed to parse candidate JSON: %w", err)
		}
		normalized, err = registry.ValidateCandidate(candidate)
	case schema.JobSchema:
		var job types.JobRequirement
		if err := json.Unmarshal(data, &job); err != nil {
			return fmt.Errorf("failed to parse job JSON: %w", err)
		}
		normalized, err = registry.ValidateJob(job)
	default:
		return fmt.Errorf("unknown kind %q (want candidate or job)", flagKind)
	}
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
