// Package resolver walks a paper through the ordered classification
// sources and accepts the first one that produces codes.
package resolver

import (
	"context"
	"errors"

	"github.com/pointbreak71/econscan/internal/paper"
	"github.com/pointbreak71/econscan/internal/runctx"
	"github.com/pointbreak71/econscan/internal/source"
)

// Resolver tries sources in configured order. Attempts stop at the first
// source that returns codes; later sources are never consulted for that
// paper. Source failures (network exhaustion, policy denial, parse
// errors) are logged and treated the same as an empty result, so one
// flaky source never blocks the fallback chain.
type Resolver struct {
	sources []source.Source
	run     *runctx.Run
}

// New creates a resolver over the given source order.
func New(run *runctx.Run, sources []source.Source) *Resolver {
	return &Resolver{sources: sources, run: run}
}

// Resolve annotates rec in place with codes and provenance. It returns an
// error only when ctx is cancelled; every per-source failure degrades to
// trying the next source.
func (r *Resolver) Resolve(ctx context.Context, rec *paper.Record) error {
	log := r.run.Log.With().
		Str("doi", rec.DOI).
		Str("journal", rec.JournalKey).
		Int("year", rec.Year).
		Logger()

	// Raw text from the best empty extraction, kept only when no source
	// ever produces codes.
	var fallbackRaw string

	for _, src := range r.sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		ext, err := src.Extract(ctx, rec)
		switch {
		case errors.Is(err, source.ErrNotApplicable):
			log.Debug().Str("source", src.Name()).Msg("source not applicable")
			continue
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.run.Stats.RecordAttempt(src.Name())
			log.Warn().Err(err).Str("source", src.Name()).Msg("source lookup failed")
			continue
		}

		r.run.Stats.RecordAttempt(src.Name())
		if !ext.Empty() {
			rec.SetClassification(ext.Codes, ext.Raw, src.Name())
			r.run.Stats.RecordHit(src.Name())
			r.run.Stats.RecordPaper(true)
			log.Debug().
				Str("source", src.Name()).
				Strs("codes", ext.Codes).
				Msg("codes resolved")
			return nil
		}
		if fallbackRaw == "" && ext.Raw != "" {
			fallbackRaw = ext.Raw
		}
	}

	rec.SetClassification(nil, fallbackRaw, paper.SourceNone)
	r.run.Stats.RecordPaper(false)
	log.Debug().Msg("no source produced codes")
	return nil
}
