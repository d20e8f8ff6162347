package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/pointbreak71/econscan/internal/listing"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "List papers from OpenAlex for every configured journal-year",
	Long: `Fetch journal-year paper listings from the OpenAlex catalog into
raw JSONL files under the data directory. Existing listing files are
kept as-is, so reruns only fill gaps.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
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
	return nil
}

func doFetch(ctx context.Context, p *pipeline) error {
	lister := listing.New(p.run, p.fetcher, p.cfg.RawDir())
	return lister.FetchAll(ctx, p.journals(), p.cfg.Years.Start, p.cfg.Years.End)
}
