package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the whole pipeline: fetch, enrich, build",
	RunE:  runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	p := mustPipeline()
	defer p.close()

	ctx, stop := signalContext()
	defer stop()

	if err := doFetch(ctx, p); err != nil {
		if errors.Is(err, context.Canceled) {
			exitWithError(ExitError, "interrupted")
		}
		exitWithError(ExitError, "fetching listings: %v", err)
	}

	if err := doEnrich(ctx, p); err != nil {
		if errors.Is(err, context.Canceled) {
			exitWithError(ExitError, "interrupted; run again to resume")
		}
		exitWithError(ExitError, "enriching: %v", err)
	}
	_ = outputJSON(p.run.Stats.Snapshot())

	return runBuild(cmd, args)
}
