package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// crossrefBaseURL is the Crossref works endpoint.
const crossrefBaseURL = "https://api.crossref.org/works/"

// Crossref looks a paper up by DOI in the Crossref bibliographic API.
// Subject headings are scanned first; some publishers put JEL codes there.
// Failing that the whole message object is scanned as text.
type Crossref struct {
	client Getter
	tax    *jel.Taxonomy
}

// NewCrossref creates the Crossref adapter.
func NewCrossref(client Getter, tax *jel.Taxonomy) *Crossref {
	return &Crossref{client: client, tax: tax}
}

func (c *Crossref) Name() string { return paper.SourceCrossref }

func (c *Crossref) Extract(ctx context.Context, rec *paper.Record) (*Extraction, error) {
	if rec.DOI == "" {
		return nil, ErrNotApplicable
	}

	body, err := c.client.Get(ctx, crossrefBaseURL+rec.DOI, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Message struct {
			Subject []string `json:"subject"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing crossref response: %w", err)
	}

	if len(resp.Message.Subject) > 0 {
		joined := strings.Join(resp.Message.Subject, ", ")
		if codes := c.tax.Extract(joined); len(codes) > 0 {
			return &Extraction{Codes: codes, Raw: snippet(joined)}, nil
		}
	}

	// Fall back to scanning the whole message body as text.
	var raw struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &raw); err == nil && len(raw.Message) > 0 {
		if codes := c.tax.Extract(string(raw.Message)); len(codes) > 0 {
			return &Extraction{Codes: codes, Raw: snippet(string(raw.Message))}, nil
		}
	}

	return &Extraction{}, nil
}
