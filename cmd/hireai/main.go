// Package main provides the hireai command line interface: deterministic
// candidate ranking, record validation, and free-text candidate search.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagJSONLogs bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "hireai",
	Short: "Deterministic, explainable candidate ranking",
	Long:  "hireai scores structured candidate records against structured job requirements using an inspectable feature/weight model and returns ranked, explained results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config JSON (defaults used when omitted)")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}
