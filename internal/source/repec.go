package source

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// repecSearchURL is the IDEAS/RePEc site search endpoint.
const repecSearchURL = "https://ideas.repec.org/cgi-bin/htsearch"

// RePEc searches the IDEAS/RePEc secondary database by DOI and scans the
// result page for codes. RePEc abstract pages carry explicit JEL listings,
// so a search hit often surfaces them directly in the result snippets.
type RePEc struct {
	client Getter
	tax    *jel.Taxonomy
}

// NewRePEc creates the IDEAS/RePEc adapter.
func NewRePEc(client Getter, tax *jel.Taxonomy) *RePEc {
	return &RePEc{client: client, tax: tax}
}

func (r *RePEc) Name() string { return paper.SourceRePEc }

func (r *RePEc) Extract(ctx context.Context, rec *paper.Record) (*Extraction, error) {
	if rec.DOI == "" {
		return nil, ErrNotApplicable
	}

	body, err := r.client.Get(ctx, repecSearchURL, url.Values{"q": {rec.DOI}})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing repec page: %w", err)
	}

	text := doc.Text()
	if codes := r.tax.Extract(text); len(codes) > 0 {
		return &Extraction{Codes: codes, Raw: snippet(text)}, nil
	}
	return &Extraction{}, nil
}
