package paper

import (
	"regexp"
	"strings"
)

var doiURLRe = regexp.MustCompile(`(?i)^https?://(dx\.)?doi\.org/`)

// NormalizeDOI normalizes a DOI to a consistent format for comparison.
// It strips URL prefixes and a leading "doi:" label and lowercases the rest.
// Returns "" for empty or label-only input.
func NormalizeDOI(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = doiURLRe.ReplaceAllString(s, "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "doi:"), "DOI:")
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeTitle case-folds a title and collapses runs of whitespace,
// for use as a deduplication key when no DOI is available.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// ReconstructAbstract rebuilds abstract text from an OpenAlex inverted
// index (token -> positions). Returns "" for an empty index.
func ReconstructAbstract(inverted map[string][]int) string {
	if len(inverted) == 0 {
		return ""
	}

	maxPos := -1
	for _, positions := range inverted {
		for _, p := range positions {
			if p > maxPos {
				maxPos = p
			}
		}
	}
	if maxPos < 0 {
		return ""
	}

	words := make([]string, maxPos+1)
	for token, positions := range inverted {
		for _, p := range positions {
			if p >= 0 {
				words[p] = token
			}
		}
	}

	var out []string
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
