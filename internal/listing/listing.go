// Package listing pulls journal-year paper listings from the OpenAlex
// catalog and writes them to raw JSONL files.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pointbreak71/econscan/internal/paper"
	"github.com/pointbreak71/econscan/internal/runctx"
)

// worksURL is the OpenAlex works listing endpoint.
const worksURL = "https://api.openalex.org/works"

// perPage is the OpenAlex page size; 200 is the API maximum.
const perPage = 200

// Journal identifies one venue to list. SourceID, when known, filters
// precisely by the OpenAlex source; otherwise the display name is matched.
type Journal struct {
	Key      string
	Name     string
	SourceID string
}

// Getter is the slice of the fetcher the lister needs.
type Getter interface {
	Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error)
}

// Lister fetches listings with cursor pagination and materializes them as
// one JSONL file per journal-year under rawDir/<key>/<year>.jsonl.
type Lister struct {
	run    *runctx.Run
	client Getter
	rawDir string
}

// New creates a lister writing under rawDir.
func New(run *runctx.Run, client Getter, rawDir string) *Lister {
	return &Lister{run: run, client: client, rawDir: rawDir}
}

// listPage mirrors the slice of the OpenAlex works response we consume.
type listPage struct {
	Results []work `json:"results"`
	Meta    struct {
		NextCursor string `json:"next_cursor"`
	} `json:"meta"`
}

type work struct {
	ID                    string           `json:"id"`
	DOI                   string           `json:"doi"`
	Title                 string           `json:"title"`
	PublicationYear       int              `json:"publication_year"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
	Authorships           []struct {
		Author struct {
			DisplayName string `json:"display_name"`
		} `json:"author"`
	} `json:"authorships"`
	PrimaryLocation struct {
		LandingPageURL string `json:"landing_page_url"`
	} `json:"primary_location"`
	Concepts []struct {
		DisplayName string `json:"display_name"`
	} `json:"concepts"`
}

func (l *Lister) outputPath(j Journal, year int) string {
	return filepath.Join(l.rawDir, j.Key, fmt.Sprintf("%d.jsonl", year))
}

// FetchJournalYear lists one journal-year. An existing output file is
// trusted and skipped, so reruns only fill gaps.
func (l *Lister) FetchJournalYear(ctx context.Context, j Journal, year int) error {
	outPath := l.outputPath(j, year)
	log := l.run.Log.With().Str("journal", j.Key).Int("year", year).Logger()

	if _, err := os.Stat(outPath); err == nil {
		log.Debug().Str("path", outPath).Msg("listing exists, skipping")
		return nil
	}

	var records []paper.Record
	cursor := "*"
	for cursor != "" {
		if err := ctx.Err(); err != nil {
			return err
		}

		params := url.Values{
			"filter":   {l.filter(j, year)},
			"per-page": {strconv.Itoa(perPage)},
			"cursor":   {cursor},
			"select":   {"id,doi,title,authorships,publication_year,abstract_inverted_index,primary_location,concepts"},
		}
		body, err := l.client.Get(ctx, worksURL, params)
		if err != nil {
			return fmt.Errorf("listing %s/%d: %w", j.Key, year, err)
		}

		var page listPage
		if err := json.Unmarshal(body, &page); err != nil {
			return fmt.Errorf("parsing listing page for %s/%d: %w", j.Key, year, err)
		}

		for _, w := range page.Results {
			records = append(records, l.toRecord(j, year, w))
		}
		cursor = page.Meta.NextCursor
		log.Debug().Int("page_size", len(page.Results)).Bool("more", cursor != "").Msg("page fetched")
	}

	// Write whole, then rename, so the skip-existing check never trusts
	// a partially written file.
	tmp := outPath + ".tmp"
	if err := paper.WriteAll(tmp, records); err != nil {
		return fmt.Errorf("writing listing for %s/%d: %w", j.Key, year, err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		return fmt.Errorf("committing listing for %s/%d: %w", j.Key, year, err)
	}

	log.Info().Int("papers", len(records)).Msg("listing written")
	return nil
}

// FetchAll lists every journal over the year range, inclusive.
func (l *Lister) FetchAll(ctx context.Context, journals []Journal, startYear, endYear int) error {
	for _, j := range journals {
		for year := startYear; year <= endYear; year++ {
			if err := l.FetchJournalYear(ctx, j, year); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Lister) filter(j Journal, year int) string {
	if j.SourceID != "" {
		return fmt.Sprintf("publication_year:%d,primary_location.source.id:%s", year, j.SourceID)
	}
	return fmt.Sprintf("publication_year:%d,primary_location.source.display_name:%q", year, j.Name)
}

// toRecord flattens an OpenAlex work into the domain record the rest of
// the pipeline consumes.
func (l *Lister) toRecord(j Journal, year int, w work) paper.Record {
	rec := paper.Record{
		JournalKey:     j.Key,
		Journal:        j.Name,
		Year:           year,
		DOI:            paper.NormalizeDOI(w.DOI),
		OpenAlexID:     w.ID,
		Title:          w.Title,
		LandingPageURL: w.PrimaryLocation.LandingPageURL,
	}
	if w.PublicationYear != 0 {
		rec.Year = w.PublicationYear
	}
	for _, a := range w.Authorships {
		if name := a.Author.DisplayName; name != "" {
			rec.Authors = append(rec.Authors, name)
		}
	}
	for _, c := range w.Concepts {
		if c.DisplayName != "" {
			rec.Concepts = append(rec.Concepts, c.DisplayName)
		}
	}
	if len(w.AbstractInvertedIndex) > 0 {
		rec.Abstract = paper.ReconstructAbstract(w.AbstractInvertedIndex)
	}
	return rec
}
