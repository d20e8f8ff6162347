package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pointbreak71/econscan/internal/dataset"
	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/runctx"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble the deduplicated dataset and export it",
	Long: `Build the final dataset from all enriched journal-year files:
deduplicate within each journal-year (by DOI, then by title for
DOI-less records), decorate codes with JEL hierarchy descriptions, and
write the configured export formats. Dataset diagnostics are printed
as JSON.`,
	RunE: runBuild,
}

// BuildResult is the JSON report printed after a build.
type BuildResult struct {
	Raw         int                 `json:"raw_records"`
	Deduped     int                 `json:"deduplicated_records"`
	Outputs     []string            `json:"outputs"`
	Diagnostics dataset.Diagnostics `json:"diagnostics"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	run := runctx.New(newLogger())

	records, err := dataset.Load(cfg.EnrichedDir())
	if err != nil {
		exitWithError(ExitDataError, "loading enriched data: %v", err)
	}
	if len(records) == 0 {
		exitWithError(ExitDataError, "no enriched records under %s; run 'econscan enrich' first", cfg.EnrichedDir())
	}

	deduped := dataset.Dedupe(records)
	run.Log.Info().Int("raw", len(records)).Int("deduplicated", len(deduped)).Msg("dataset assembled")

	tax := jel.NewTaxonomy()
	result := BuildResult{
		Raw:         len(records),
		Deduped:     len(deduped),
		Diagnostics: dataset.Diagnose(deduped),
	}

	for _, format := range cfg.Output.Formats {
		path := filepath.Join(cfg.Output.Dir, "dataset."+format)
		var writeErr error
		switch format {
		case "csv":
			writeErr = dataset.WriteCSV(path, tax, deduped)
		case "xlsx":
			writeErr = dataset.WriteXLSX(path, tax, deduped)
		}
		if writeErr != nil {
			exitWithError(ExitError, "writing %s: %v", path, writeErr)
		}
		result.Outputs = append(result.Outputs, path)
		run.Log.Info().Str("path", path).Msg("dataset written")
	}

	return outputJSON(result)
}
