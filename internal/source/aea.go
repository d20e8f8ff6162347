package source

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// jelLabels are the section labels that mark a JEL classification block on
// AEA article pages.
var jelLabels = []string{"JEL CLASSIF", "JEL CODE", "JEL:"}

// looseJELRe is the fallback scan over whole-page text for a labeled code
// run when no structured section was found.
var looseJELRe = regexp.MustCompile(`(?i)(?:JEL|classif)[:\s]+([A-Z0-9,;\s]+)`)

// AEA scrapes JEL codes off an article's landing page. It prefers the
// listing's landing URL when it points at aeaweb.org and otherwise follows
// the DOI redirect.
type AEA struct {
	client Getter
	tax    *jel.Taxonomy
}

// NewAEA creates the landing-page adapter.
func NewAEA(client Getter, tax *jel.Taxonomy) *AEA {
	return &AEA{client: client, tax: tax}
}

func (a *AEA) Name() string { return paper.SourceAEA }

// Extract fetches the landing page and searches it for a JEL section.
func (a *AEA) Extract(ctx context.Context, rec *paper.Record) (*Extraction, error) {
	target := a.pageURL(rec)
	if target == "" {
		return nil, ErrNotApplicable
	}

	body, err := a.client.Get(ctx, target, nil)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing landing page: %w", err)
	}

	// Structured pass: a section whose text carries a JEL label.
	var found *Extraction
	doc.Find("div, p, li, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if !hasJELLabel(text) {
			return true
		}
		if codes := a.tax.Extract(text); len(codes) > 0 {
			found = &Extraction{Codes: codes, Raw: snippet(text)}
			return false
		}
		return true
	})
	if found != nil {
		return found, nil
	}

	// Loose pass over the whole page text.
	pageText := doc.Text()
	for _, m := range looseJELRe.FindAllStringSubmatch(pageText, -1) {
		if codes := a.tax.Extract(m[1]); len(codes) > 0 {
			return &Extraction{Codes: codes, Raw: snippet(strings.TrimSpace(m[0]))}, nil
		}
	}

	return &Extraction{}, nil
}

// pageURL picks the page to scrape: the aeaweb landing URL when the
// listing supplied one, else the DOI redirect.
func (a *AEA) pageURL(rec *paper.Record) string {
	if u := rec.LandingPageURL; u != "" && strings.Contains(strings.ToLower(u), "aeaweb.org") {
		return u
	}
	if rec.DOI != "" {
		return "https://doi.org/" + rec.DOI
	}
	return ""
}

func hasJELLabel(text string) bool {
	upper := strings.ToUpper(text)
	for _, label := range jelLabels {
		if strings.Contains(upper, label) {
			return true
		}
	}
	return false
}
