// Package paper defines the core domain types for journal paper records.
package paper

// Provenance values for the JELSource field.
const (
	SourceAEA      = "aea"
	SourceCrossref = "crossref"
	SourceOpenAlex = "openalex"
	SourceRePEc    = "repec"
	SourceNone     = "none"
)

// Record represents one paper in a journal-year file.
//
// Identity fields are set by the listing step and never altered afterwards;
// the enrichment step fills in the classification fields only.
type Record struct {
	// Identity
	JournalKey string `json:"journal_key"`
	Journal    string `json:"journal,omitempty"`
	Year       int    `json:"year"`
	DOI        string `json:"doi,omitempty"` // Normalized (lowercase, no URL prefix)
	OpenAlexID string `json:"openalex_id,omitempty"`
	Title      string `json:"title"`
	Authors    []string `json:"authors,omitempty"`

	// Content
	Abstract       string   `json:"abstract,omitempty"`
	LandingPageURL string   `json:"landing_page_url,omitempty"`
	Concepts       []string `json:"concepts,omitempty"`

	// Classification. JELSource is always set once a record has been
	// enriched; "none" records that no source had an answer.
	JELCodes  []string `json:"jel_codes"`
	JELRaw    string   `json:"jel_raw,omitempty"`
	JELSource string   `json:"jel_source,omitempty"`
}

// Enriched reports whether the record has been through enrichment.
// An empty code set with JELSource "none" counts as enriched.
func (r *Record) Enriched() bool {
	return r.JELSource != ""
}

// SetClassification records the enrichment outcome on the record.
// Passing no codes records the absence explicitly with provenance "none".
func (r *Record) SetClassification(codes []string, raw, source string) {
	if len(codes) == 0 {
		r.JELCodes = []string{}
		r.JELRaw = raw
		r.JELSource = SourceNone
		return
	}
	r.JELCodes = codes
	r.JELRaw = raw
	r.JELSource = source
}
