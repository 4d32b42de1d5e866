package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hireai/internal/search"
)

var flagSearchLimit int

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Free-text search over a candidates file",
	Long:  "Indexes the candidates file in memory and runs a natural-language query, printing matching candidate identifiers best first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagCandidatesFile, "candidates", "", "Path to candidates JSON array (required)")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 10, "Maximum number of results")
	_ = searchCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	candidates, malformed, err := loadCandidates(flagCandidatesFile)
	if err != nil {
		return err
	}
	for _, m := range malformed {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %s\n", m.CandidateID, m.Reason)
	}

	index, err := search.NewIndex(candidates)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()

	ids, err := index.Search(args[0], flagSearchLimit)
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
