// Package dataset assembles enriched journal-year files into the final
// deduplicated dataset and its export formats.
package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// Load gathers every enriched record under dir, walking
// <journal>/<year>.enriched.jsonl files in sorted order so assembly is
// deterministic.
func Load(dir string) ([]paper.Record, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".enriched.jsonl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no enriched data under %s: %w", dir, err)
		}
		return nil, fmt.Errorf("walking enriched dir: %w", err)
	}
	sort.Strings(paths)

	var all []paper.Record
	for _, path := range paths {
		records, err := paper.ReadFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

type groupKey struct {
	journal string
	year    int
}

// Dedupe removes duplicates within each journal-year group, keeping the
// first occurrence. Records sharing a normalized DOI are duplicates;
// among records without a DOI, a shared normalized title marks the
// duplicate. Groups never mix, so the same title in two different years
// survives in both. The input order is preserved and the operation is
// idempotent.
func Dedupe(records []paper.Record) []paper.Record {
	seenDOI := make(map[groupKey]map[string]bool)
	seenTitle := make(map[groupKey]map[string]bool)

	out := make([]paper.Record, 0, len(records))
	for _, rec := range records {
		key := groupKey{journal: rec.JournalKey, year: rec.Year}

		if doi := paper.NormalizeDOI(rec.DOI); doi != "" {
			if seenDOI[key][doi] {
				continue
			}
			if seenDOI[key] == nil {
				seenDOI[key] = make(map[string]bool)
			}
			seenDOI[key][doi] = true
			out = append(out, rec)
			continue
		}

		title := paper.NormalizeTitle(rec.Title)
		if seenTitle[key][title] {
			continue
		}
		if seenTitle[key] == nil {
			seenTitle[key] = make(map[string]bool)
		}
		seenTitle[key][title] = true
		out = append(out, rec)
	}
	return out
}

// Diagnostics summarizes a dataset for the build report.
type Diagnostics struct {
	Papers     int
	YearMin    int
	YearMax    int
	WithDOI    int
	WithJEL    int
	PerJournal map[string]int
	PerSource  map[string]int
	TopPrimary []PrimaryCount
}

// PrimaryCount is one primary JEL category's paper count.
type PrimaryCount struct {
	Letter string
	Count  int
}

// Diagnose computes coverage statistics over the assembled dataset.
func Diagnose(records []paper.Record) Diagnostics {
	d := Diagnostics{
		Papers:     len(records),
		PerJournal: make(map[string]int),
		PerSource:  make(map[string]int),
	}

	primary := make(map[string]int)
	for _, rec := range records {
		if d.YearMin == 0 || rec.Year < d.YearMin {
			d.YearMin = rec.Year
		}
		if rec.Year > d.YearMax {
			d.YearMax = rec.Year
		}
		d.PerJournal[rec.JournalKey]++
		if rec.DOI != "" {
			d.WithDOI++
		}
		if len(rec.JELCodes) > 0 {
			d.WithJEL++
			for _, letter := range jel.PrimaryLetters(rec.JELCodes) {
				primary[letter]++
			}
		}
		if rec.JELSource != "" {
			d.PerSource[rec.JELSource]++
		}
	}

	for letter, count := range primary {
		d.TopPrimary = append(d.TopPrimary, PrimaryCount{Letter: letter, Count: count})
	}
	sort.Slice(d.TopPrimary, func(i, j int) bool {
		if d.TopPrimary[i].Count != d.TopPrimary[j].Count {
			return d.TopPrimary[i].Count > d.TopPrimary[j].Count
		}
		return d.TopPrimary[i].Letter < d.TopPrimary[j].Letter
	})
	return d
}
