package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// openAlexBaseURL is the OpenAlex works endpoint.
const openAlexBaseURL = "https://api.openalex.org/works/"

// conceptRawLimit caps how many concept names are kept as raw text.
const conceptRawLimit = 5

// OpenAlex re-fetches a work's full catalog metadata and scans it for JEL
// codes. OpenAlex does not tag works with JEL directly, so hits are rare;
// when nothing is found the work's concept names are kept as raw context
// with zero codes, matching what the surrounding dataset records.
type OpenAlex struct {
	client Getter
	tax    *jel.Taxonomy
}

// NewOpenAlex creates the catalog-metadata adapter.
func NewOpenAlex(client Getter, tax *jel.Taxonomy) *OpenAlex {
	return &OpenAlex{client: client, tax: tax}
}

func (o *OpenAlex) Name() string { return paper.SourceOpenAlex }

func (o *OpenAlex) Extract(ctx context.Context, rec *paper.Record) (*Extraction, error) {
	id := workID(rec.OpenAlexID)
	if id == "" {
		return nil, ErrNotApplicable
	}

	body, err := o.client.Get(ctx, openAlexBaseURL+id, nil)
	if err != nil {
		return nil, err
	}

	var work struct {
		Concepts []struct {
			DisplayName string `json:"display_name"`
		} `json:"concepts"`
	}
	if err := json.Unmarshal(body, &work); err != nil {
		return nil, fmt.Errorf("parsing openalex response: %w", err)
	}

	if codes := o.tax.Extract(string(body)); len(codes) > 0 {
		return &Extraction{Codes: codes, Raw: snippet(string(body))}, nil
	}

	// No codes: surface concept names as raw context only.
	var names []string
	for _, c := range work.Concepts {
		if c.DisplayName != "" {
			names = append(names, c.DisplayName)
		}
		if len(names) == conceptRawLimit {
			break
		}
	}
	return &Extraction{Raw: snippet(strings.Join(names, ", "))}, nil
}

// workID extracts the bare work id from an OpenAlex id URL
// ("https://openalex.org/W2024..." -> "W2024...").
func workID(raw string) string {
	if raw == "" {
		return ""
	}
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		return raw[i+1:]
	}
	return raw
}
