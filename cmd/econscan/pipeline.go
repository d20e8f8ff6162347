package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/pointbreak71/econscan/internal/config"
	"github.com/pointbreak71/econscan/internal/enrich"
	"github.com/pointbreak71/econscan/internal/fetch"
	"github.com/pointbreak71/econscan/internal/fetchcache"
	"github.com/pointbreak71/econscan/internal/listing"
	"github.com/pointbreak71/econscan/internal/runctx"
)

// newLogger builds the console logger all pipeline components share.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// mustLoadConfig loads the --config file or exits with a config error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// signalContext returns a context cancelled on SIGINT/SIGTERM, so an
// interrupted enrichment stops at a paper boundary and the checkpoint
// stays coherent.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// pipeline bundles the shared infrastructure behind the subcommands.
type pipeline struct {
	cfg     *config.Config
	run     *runctx.Run
	cache   *fetchcache.Cache
	fetcher *fetch.Fetcher
}

// mustPipeline wires config, logger, cache and fetcher, exiting on error.
func mustPipeline() *pipeline {
	cfg := mustLoadConfig()
	run := runctx.New(newLogger())

	cache, err := fetchcache.Open(cfg.Enrichment.CachePath)
	if err != nil {
		exitWithError(ExitError, "opening fetch cache: %v", err)
	}

	hc := &http.Client{Timeout: cfg.HTTPTimeout()}
	opts := []fetch.Option{
		fetch.WithHTTPClient(hc),
		fetch.WithPolicy(fetch.Policy{
			MaxAttempts: cfg.Scraping.MaxRetries,
			BaseDelay:   time.Second,
			Multiplier:  2.0,
			MaxDelay:    30 * time.Second,
		}),
		fetch.WithHostInterval(cfg.HostDelay()),
		fetch.WithUserAgent(cfg.FetchUserAgent()),
		fetch.WithLogger(run.Log),
	}
	if cfg.RobotsEnabled() {
		opts = append(opts, fetch.WithGate(fetch.NewRobotsGate(hc, cache, cfg.FetchUserAgent())))
	}

	return &pipeline{
		cfg:     cfg,
		run:     run,
		cache:   cache,
		fetcher: fetch.NewFetcher(cache, opts...),
	}
}

func (p *pipeline) close() {
	if err := p.cache.Close(); err != nil {
		p.run.Log.Warn().Err(err).Msg("closing fetch cache")
	}
}

// journals maps the configured venues into listing units.
func (p *pipeline) journals() []listing.Journal {
	out := make([]listing.Journal, 0, len(p.cfg.Journals))
	for _, j := range p.cfg.Journals {
		out = append(out, listing.Journal{Key: j.Key, Name: j.Name, SourceID: j.OpenAlexID})
	}
	return out
}

// journalYears enumerates every journal-year in config order.
func (p *pipeline) journalYears() []enrich.JournalYear {
	var out []enrich.JournalYear
	for _, j := range p.cfg.Journals {
		for year := p.cfg.Years.Start; year <= p.cfg.Years.End; year++ {
			out = append(out, enrich.JournalYear{JournalKey: j.Key, Year: year})
		}
	}
	return out
}
