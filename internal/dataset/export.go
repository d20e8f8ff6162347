package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// sheetName is the worksheet holding the dataset in XLSX exports.
const sheetName = "Papers"

var exportHeader = []string{
	"year", "journal_key", "journal", "title", "authors", "doi", "url",
	"openalex_id", "abstract", "jel_codes", "jel_raw", "jel_source",
	"jel_primary", "jel_primary_desc", "concepts",
}

// exportRow flattens one record into the shared export column set.
// JEL hierarchy columns come from resolving each code's primary letter
// against the taxonomy.
func exportRow(tax *jel.Taxonomy, rec paper.Record) []string {
	letters := jel.PrimaryLetters(rec.JELCodes)
	descs := make([]string, 0, len(letters))
	for _, letter := range letters {
		if desc, err := tax.Describe(letter); err == nil {
			descs = append(descs, desc.Primary)
		}
	}

	url := rec.LandingPageURL
	if url == "" {
		url = rec.OpenAlexID
	}

	return []string{
		strconv.Itoa(rec.Year),
		rec.JournalKey,
		rec.Journal,
		rec.Title,
		strings.Join(rec.Authors, "|"),
		rec.DOI,
		url,
		rec.OpenAlexID,
		rec.Abstract,
		strings.Join(rec.JELCodes, ";"),
		rec.JELRaw,
		rec.JELSource,
		strings.Join(letters, ";"),
		strings.Join(descs, ";"),
		strings.Join(rec.Concepts, "|"),
	}
}

// WriteCSV writes the dataset, creating parent directories as needed.
func WriteCSV(path string, tax *jel.Taxonomy, records []paper.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, rec := range records {
		if err := w.Write(exportRow(tax, rec)); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the dataset as a single-sheet workbook.
func WriteXLSX(path string, tax *jel.Taxonomy, records []paper.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing xlsx header: %w", err)
	}

	for i, rec := range records {
		row := exportRow(tax, rec)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		axis, err := excelize.JoinCellName("A", i+2)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheetName, axis, &cells); err != nil {
			return fmt.Errorf("writing xlsx row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving xlsx: %w", err)
	}
	return nil
}
