package jel

import (
	"regexp"
	"strings"
)

// extractRe matches candidate codes in free text: a capital letter followed
// by one or two digits, on word boundaries.
var extractRe = regexp.MustCompile(`\b([A-Z]\d{1,2})\b`)

// Extract scans free text for JEL code candidates and returns them
// normalized: uppercased, validated against the taxonomy, deduplicated,
// first-seen order preserved.
func (t *Taxonomy) Extract(text string) []string {
	if text == "" {
		return nil
	}
	return t.Normalize(extractRe.FindAllString(strings.ToUpper(text), -1))
}
