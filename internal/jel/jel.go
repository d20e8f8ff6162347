// Package jel provides the JEL classification taxonomy and code extraction.
//
// JEL codes are hierarchical: a primary letter ("C"), a two-character
// subcategory ("C1"), and a three-character code ("C13"). The taxonomy is a
// curated, immutable lookup table; codes are only accepted into records when
// their full prefix chain resolves against it.
package jel

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Entry is one taxonomy row.
type Entry struct {
	Code        string `json:"code"`
	Level       int    `json:"level"` // 1 = letter, 2 = letter+digit, 3 = letter+2 digits
	Description string `json:"description"`
	ParentCode  string `json:"parent_code,omitempty"`
}

// Description is the resolved hierarchical description for a code.
type Description struct {
	Code        string `json:"code"`
	Primary     string `json:"primary_description"`
	Subcategory string `json:"subcategory_description,omitempty"`
	Full        string `json:"full_description"`
}

// codeRe matches the canonical code shape: letter, optionally 1-2 digits.
var codeRe = regexp.MustCompile(`^[A-Z]\d{0,2}$`)

// Taxonomy is an immutable JEL code lookup.
type Taxonomy struct {
	entries map[string]Entry
}

// NewTaxonomy builds the taxonomy from the curated table.
func NewTaxonomy() *Taxonomy {
	t := &Taxonomy{entries: make(map[string]Entry, len(curatedTable))}
	for _, e := range curatedTable {
		t.entries[e.Code] = e
	}
	return t
}

// Lookup returns the raw entry for an exact code.
func (t *Taxonomy) Lookup(code string) (Entry, bool) {
	e, ok := t.entries[strings.ToUpper(strings.TrimSpace(code))]
	return e, ok
}

// Valid reports whether a code has the canonical shape and every prefix
// (letter, letter+digit for three-character codes) resolves in the taxonomy.
// The code itself need not be a table entry at level 3: the table is curated,
// not exhaustive, but the parent chain must be known.
func (t *Taxonomy) Valid(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRe.MatchString(code) {
		return false
	}
	if _, ok := t.entries[code[:1]]; !ok {
		return false
	}
	if len(code) >= 2 {
		if _, ok := t.entries[code[:2]]; !ok {
			return false
		}
	}
	return true
}

// Describe resolves a code into its hierarchical description.
// Fails when the code is malformed or its prefix chain is unknown.
func (t *Taxonomy) Describe(code string) (Description, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !t.Valid(code) {
		return Description{}, fmt.Errorf("unknown JEL code: %q", code)
	}

	d := Description{Code: code}
	d.Primary = t.entries[code[:1]].Description
	if len(code) >= 2 {
		d.Subcategory = t.entries[code[:2]].Description
	}
	if e, ok := t.entries[code]; ok {
		d.Full = e.Description
	} else {
		// Curated table has no level-3 row; fall back to the subcategory.
		d.Full = d.Subcategory
	}
	return d, nil
}

// Normalize uppercases, validates and dedupes a candidate code list,
// preserving first-seen order. Codes failing Valid are dropped.
func (t *Taxonomy) Normalize(codes []string) []string {
	var out []string
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" || seen[c] || !t.Valid(c) {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// PrimaryLetters returns the distinct primary letters of a code list,
// sorted, for diagnostics reporting.
func PrimaryLetters(codes []string) []string {
	set := make(map[string]bool)
	for _, c := range codes {
		if c != "" {
			set[strings.ToUpper(c[:1])] = true
		}
	}
	letters := make([]string, 0, len(set))
	for l := range set {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return letters
}

// All returns every entry in the table, sorted by code.
func (t *Taxonomy) All() []Entry {
	all := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return all
}
