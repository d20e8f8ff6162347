// Package source defines the uniform adapter capability for JEL code
// lookup and the four concrete adapters: the AEA landing page, the
// Crossref API, the OpenAlex API, and the IDEAS/RePEc search page.
//
// Adapters differ only in request construction and parsing; transport,
// retries, rate limiting and caching all live in the fetch package.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// ErrNotApplicable means the paper lacks the identity field this source
// needs (e.g. no DOI). The resolver skips the source without counting
// an attempt.
var ErrNotApplicable = errors.New("source not applicable to paper")

// Extraction is a successful adapter result. Codes may be empty: a page
// that was fetched and parsed but contained no recognizable codes is a
// success with zero codes, distinct from a fetch failure.
type Extraction struct {
	Codes []string
	Raw   string
}

// Empty reports whether the extraction produced no codes.
func (e *Extraction) Empty() bool {
	return len(e.Codes) == 0
}

// Getter is the slice of the fetcher the adapters need.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// Source turns one paper's identity into classification codes.
type Source interface {
	Name() string
	Extract(ctx context.Context, rec *paper.Record) (*Extraction, error)
}

// Build instantiates adapters for the configured source names, in order.
func Build(names []string, client Getter, tax *jel.Taxonomy) ([]Source, error) {
	out := make([]Source, 0, len(names))
	for _, name := range names {
		switch name {
		case paper.SourceAEA:
			out = append(out, NewAEA(client, tax))
		case paper.SourceCrossref:
			out = append(out, NewCrossref(client, tax))
		case paper.SourceOpenAlex:
			out = append(out, NewOpenAlex(client, tax))
		case paper.SourceRePEc:
			out = append(out, NewRePEc(client, tax))
		default:
			return nil, fmt.Errorf("unknown enrichment source: %q", name)
		}
	}
	return out, nil
}

// rawSnippetLen caps the raw provenance text stored on a record.
const rawSnippetLen = 500

// snippet truncates raw source text for storage, backing off to a rune
// boundary so scraped page text never leaves invalid UTF-8 behind.
func snippet(s string) string {
	if len(s) <= rawSnippetLen {
		return s
	}
	cut := rawSnippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
