package resolver

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak71/econscan/internal/fetch"
	"github.com/pointbreak71/econscan/internal/paper"
	"github.com/pointbreak71/econscan/internal/runctx"
	"github.com/pointbreak71/econscan/internal/source"
)

// stubSource scripts one adapter's answer and records whether it ran.
type stubSource struct {
	name   string
	ext    *source.Extraction
	err    error
	called int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Extract(_ context.Context, _ *paper.Record) (*source.Extraction, error) {
	s.called++
	if s.err != nil {
		return nil, s.err
	}
	return s.ext, nil
}

func testRun() *runctx.Run {
	return runctx.New(zerolog.Nop())
}

func TestResolveFirstHitWins(t *testing.T) {
	a := &stubSource{name: "aea", ext: &source.Extraction{}}
	b := &stubSource{name: "crossref", ext: &source.Extraction{Codes: []string{"C13", "D43"}, Raw: "C13; D43"}}
	c := &stubSource{name: "openalex", ext: &source.Extraction{Codes: []string{"E52"}}}
	d := &stubSource{name: "repec", ext: &source.Extraction{Codes: []string{"L13"}}}

	run := testRun()
	rec := &paper.Record{DOI: "10.1257/aer.100.1.1"}
	require.NoError(t, New(run, []source.Source{a, b, c, d}).Resolve(context.Background(), rec))

	assert.Equal(t, []string{"C13", "D43"}, rec.JELCodes)
	assert.Equal(t, "crossref", rec.JELSource)
	assert.Equal(t, "C13; D43", rec.JELRaw)
	assert.Equal(t, 1, a.called)
	assert.Equal(t, 1, b.called)
	assert.Zero(t, c.called, "later sources must not run after a hit")
	assert.Zero(t, d.called)

	report := run.Stats.Snapshot()
	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 1, report.WithCodes)
}

func TestResolveSkipsNotApplicable(t *testing.T) {
	a := &stubSource{name: "aea", err: source.ErrNotApplicable}
	b := &stubSource{name: "crossref", ext: &source.Extraction{Codes: []string{"E52"}}}

	run := testRun()
	rec := &paper.Record{DOI: "10.1257/x"}
	require.NoError(t, New(run, []source.Source{a, b}).Resolve(context.Background(), rec))

	assert.Equal(t, "crossref", rec.JELSource)
	report := run.Stats.Snapshot()
	require.Len(t, report.Sources, 1, "not-applicable must not count as an attempt")
	assert.Equal(t, "crossref", report.Sources[0].Source)
}

func TestResolveSwallowsSourceFailure(t *testing.T) {
	a := &stubSource{name: "aea", err: &fetch.Error{Kind: fetch.KindExhausted, URL: "x"}}
	b := &stubSource{name: "crossref", ext: &source.Extraction{Codes: []string{"D43"}}}

	run := testRun()
	rec := &paper.Record{DOI: "10.1257/x"}
	require.NoError(t, New(run, []source.Source{a, b}).Resolve(context.Background(), rec))

	assert.Equal(t, []string{"D43"}, rec.JELCodes)
	assert.Equal(t, "crossref", rec.JELSource)

	report := run.Stats.Snapshot()
	require.Len(t, report.Sources, 2)
	assert.Equal(t, 1, report.Sources[0].Attempts, "failed lookup still counts as an attempt")
	assert.Zero(t, report.Sources[0].Hits)
}

func TestResolveNoHitsKeepsRawContext(t *testing.T) {
	a := &stubSource{name: "aea", ext: &source.Extraction{}}
	b := &stubSource{name: "openalex", ext: &source.Extraction{Raw: "Economics, Labor"}}
	c := &stubSource{name: "repec", ext: &source.Extraction{Raw: "later raw"}}

	run := testRun()
	rec := &paper.Record{DOI: "10.1257/x"}
	require.NoError(t, New(run, []source.Source{a, b, c}).Resolve(context.Background(), rec))

	assert.Equal(t, []string{}, rec.JELCodes, "unresolved papers carry an empty list, not nil")
	assert.Equal(t, paper.SourceNone, rec.JELSource)
	assert.Equal(t, "Economics, Labor", rec.JELRaw, "first non-empty raw wins")
	assert.True(t, rec.Enriched(), "recorded absence still counts as enriched")

	report := run.Stats.Snapshot()
	assert.Equal(t, 1, report.Processed)
	assert.Zero(t, report.WithCodes)
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	a := &stubSource{name: "aea", ext: &source.Extraction{Codes: []string{"C13"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &paper.Record{DOI: "10.1257/x"}
	err := New(testRun(), []source.Source{a}).Resolve(ctx, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, a.called)
}
