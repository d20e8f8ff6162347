package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pointbreak71/econscan/internal/enrich"
	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/resolver"
	"github.com/pointbreak71/econscan/internal/source"
)

func init() {
	rootCmd.AddCommand(enrichCmd)
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Annotate listed papers with JEL codes from the fallback sources",
	Long: `Enrich every raw journal-year listing with JEL classification codes,
consulting the configured sources in order and accepting the first
answer. Progress is checkpointed after every paper; an interrupted run
resumes exactly where it stopped, and completed journal-years are
skipped.

The run report (papers processed, per-source attempts and hits) is
printed as JSON when the run finishes.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	p := mustPipeline()
	defer p.close()

	ctx, stop := signalContext()
	defer stop()

	err := doEnrich(ctx, p)
	report := p.run.Stats.Snapshot()
	_ = outputJSON(report)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			exitWithError(ExitError, "interrupted; run again to resume")
		}
		if errors.Is(err, enrich.ErrCorruptCheckpoint) {
			exitWithError(ExitDataError, "enrichment finished with failures: %v", err)
		}
		exitWithError(ExitError, "enriching: %v", err)
	}
	return nil
}

func doEnrich(ctx context.Context, p *pipeline) error {
	tax := jel.NewTaxonomy()
	sources, err := source.Build(p.cfg.Enrichment.Sources, p.fetcher, tax)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	res := resolver.New(p.run, sources)
	proc := enrich.NewProcessor(p.run, res, p.cfg.RawDir(), p.cfg.EnrichedDir())
	return proc.ProcessAll(ctx, p.journalYears())
}
