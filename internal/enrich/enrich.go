// Package enrich drives checkpointed, resumable JEL enrichment of raw
// journal-year listing files.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pointbreak71/econscan/internal/paper"
	"github.com/pointbreak71/econscan/internal/runctx"
)

// CodeResolver annotates one record with codes and provenance.
type CodeResolver interface {
	Resolve(ctx context.Context, rec *paper.Record) error
}

// JournalYear names one unit of work.
type JournalYear struct {
	JournalKey string
	Year       int
}

func (jy JournalYear) String() string {
	return fmt.Sprintf("%s/%d", jy.JournalKey, jy.Year)
}

// Processor enriches raw listing files one journal-year at a time.
// Progress is durable after every record: the output line is appended and
// synced first, then the checkpoint advances, so an interrupt at any point
// loses at most one record's worth of work and never corrupts output.
type Processor struct {
	run    *runctx.Run
	res    CodeResolver
	rawDir string
	outDir string
}

// NewProcessor creates a processor reading raw listings from rawDir and
// writing enriched files plus checkpoints under outDir.
func NewProcessor(run *runctx.Run, res CodeResolver, rawDir, outDir string) *Processor {
	return &Processor{run: run, res: res, rawDir: rawDir, outDir: outDir}
}

func (p *Processor) inputPath(jy JournalYear) string {
	return filepath.Join(p.rawDir, jy.JournalKey, fmt.Sprintf("%d.jsonl", jy.Year))
}

func (p *Processor) outputPath(jy JournalYear) string {
	return filepath.Join(p.outDir, jy.JournalKey, fmt.Sprintf("%d.enriched.jsonl", jy.Year))
}

func (p *Processor) checkpointPath(jy JournalYear) string {
	return filepath.Join(p.outDir, jy.JournalKey, fmt.Sprintf("%d.checkpoint.json", jy.Year))
}

// ProcessFile enriches one journal-year file, resuming from its checkpoint.
// A corrupt checkpoint fails this file only.
func (p *Processor) ProcessFile(ctx context.Context, jy JournalYear) error {
	log := p.run.Log.With().Str("journal", jy.JournalKey).Int("year", jy.Year).Logger()

	records, err := paper.ReadFile(p.inputPath(jy))
	if err != nil {
		return fmt.Errorf("loading %s: %w", jy, err)
	}

	cpPath := p.checkpointPath(jy)
	cp, err := readCheckpoint(cpPath, len(records))
	if err != nil {
		return err
	}
	if cp.State == StateComplete {
		log.Debug().Msg("already complete, skipping")
		return nil
	}

	outPath := p.outputPath(jy)
	if err := p.reconcileOutput(outPath, cp.Written); err != nil {
		return fmt.Errorf("reconciling output for %s: %w", jy, err)
	}

	if cp.Written > 0 {
		log.Info().Int("done", cp.Written).Int("total", len(records)).Msg("resuming")
	}

	for i := cp.Written; i < len(records); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec := records[i]
		if err := p.res.Resolve(ctx, &rec); err != nil {
			return fmt.Errorf("resolving record %d of %s: %w", i, jy, err)
		}

		if err := paper.AppendRecord(outPath, rec); err != nil {
			return fmt.Errorf("appending record %d of %s: %w", i, jy, err)
		}

		cp = Checkpoint{Written: i + 1, Input: len(records), State: StateInProgress}
		if cp.Written == len(records) {
			cp.State = StateComplete
		}
		if err := writeCheckpoint(cpPath, cp); err != nil {
			return err
		}
	}

	// Empty input completes without a loop iteration.
	if len(records) == 0 {
		if err := writeCheckpoint(cpPath, Checkpoint{State: StateComplete}); err != nil {
			return err
		}
	}

	log.Info().Int("records", len(records)).Msg("journal-year complete")
	return nil
}

// reconcileOutput trims output lines past the checkpoint. A crash between
// append and checkpoint write leaves one extra line; dropping it makes the
// record about to be reprocessed land exactly once.
func (p *Processor) reconcileOutput(outPath string, written int) error {
	existing, err := paper.ReadFile(outPath)
	if errors.Is(err, fs.ErrNotExist) {
		if written == 0 {
			return nil // no output yet
		}
		return fmt.Errorf("output missing with checkpoint at %d: %w", written, err)
	}
	if err != nil {
		return err
	}
	if len(existing) <= written {
		return nil
	}
	return paper.WriteAll(outPath, existing[:written])
}

// ProcessAll enriches every journal-year in order. Per-file failures
// (including corrupt checkpoints) are logged and collected; cancellation
// stops the walk immediately.
func (p *Processor) ProcessAll(ctx context.Context, jys []JournalYear) error {
	var failures []error
	for _, jy := range jys {
		if err := p.ProcessFile(ctx, jy); err != nil {
			if ctx.Err() != nil {
				return err
			}
			p.run.Log.Error().Err(err).Str("journal_year", jy.String()).Msg("journal-year failed")
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
