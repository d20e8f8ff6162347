// Package runctx carries per-run state (logger, counters, run identity)
// explicitly through the pipeline instead of via package-level globals.
package runctx

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Run is the context object handed to every pipeline component.
type Run struct {
	ID        string
	Log       zerolog.Logger
	Stats     *Stats
	StartedAt time.Time
}

// New creates a Run with a fresh id and zeroed counters.
func New(log zerolog.Logger) *Run {
	id := uuid.NewString()
	return &Run{
		ID:        id,
		Log:       log.With().Str("run_id", id).Logger(),
		Stats:     NewStats(),
		StartedAt: time.Now(),
	}
}

// Stats accumulates progress counters. The pipeline is single-worker but
// the reporter may read while processing runs, so access is locked.
type Stats struct {
	mu        sync.Mutex
	processed int
	withCodes int
	sources   map[string]*SourceTally
}

// SourceTally counts how often one source was consulted and how often it
// supplied the answer.
type SourceTally struct {
	Attempts int `json:"attempts"`
	Hits     int `json:"hits"`
}

// SourceReport is a SourceTally with its source name, for ordered output.
type SourceReport struct {
	Source string `json:"source"`
	SourceTally
}

// Report is a point-in-time snapshot of the counters.
type Report struct {
	Processed int            `json:"processed"`
	WithCodes int            `json:"with_codes"`
	Sources   []SourceReport `json:"sources"`
}

// NewStats creates zeroed counters.
func NewStats() *Stats {
	return &Stats{sources: make(map[string]*SourceTally)}
}

// RecordAttempt notes that a source was consulted for one paper.
func (s *Stats) RecordAttempt(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tally(source).Attempts++
}

// RecordHit notes that a source supplied the accepted answer.
func (s *Stats) RecordHit(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tally(source).Hits++
}

// RecordPaper notes one fully processed paper.
func (s *Stats) RecordPaper(hasCodes bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed++
	if hasCodes {
		s.withCodes++
	}
}

func (s *Stats) tally(source string) *SourceTally {
	t, ok := s.sources[source]
	if !ok {
		t = &SourceTally{}
		s.sources[source] = t
	}
	return t
}

// Snapshot returns the current counters, sources sorted by name.
func (s *Stats) Snapshot() Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Report{Processed: s.processed, WithCodes: s.withCodes}
	for name, t := range s.sources {
		r.Sources = append(r.Sources, SourceReport{Source: name, SourceTally: *t})
	}
	sort.Slice(r.Sources, func(i, j int) bool { return r.Sources[i].Source < r.Sources[j].Source })
	return r
}
