// Package main provides the econscan CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configPath string
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "econscan",
	Short: "JEL-code enrichment pipeline for economics journal metadata",
	Long: `econscan assembles a paper-level dataset for a set of economics
journals: it lists papers from the OpenAlex catalog, enriches each one
with JEL classification codes from a chain of fallback sources (AEA
landing pages, Crossref, OpenAlex, IDEAS/RePEc), and builds a
deduplicated CSV/XLSX dataset.

Enrichment is checkpointed per journal-year, so interrupted runs resume
where they left off, and every HTTP response is cached so reruns never
refetch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "econscan.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Version = Version
}
