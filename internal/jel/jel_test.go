package jel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tax := NewTaxonomy()

	d, err := tax.Describe("C13")
	require.NoError(t, err)
	assert.Equal(t, "Mathematical and Quantitative Methods", d.Primary)
	assert.Equal(t, "Econometric and Statistical Methods and Methodology: General", d.Subcategory)
	assert.Equal(t, "Estimation: General", d.Full)

	// Level-3 code absent from the curated table but with known parents.
	d, err = tax.Describe("G21")
	require.NoError(t, err)
	assert.Equal(t, "Financial Economics", d.Primary)
	assert.Equal(t, "Financial Institutions and Services", d.Subcategory)
	assert.Equal(t, d.Subcategory, d.Full)

	// Letter-only code.
	d, err = tax.Describe("d")
	require.NoError(t, err)
	assert.Equal(t, "Microeconomics", d.Primary)
	assert.Empty(t, d.Subcategory)

	_, err = tax.Describe("X13")
	assert.Error(t, err, "X is not a JEL letter")
	_, err = tax.Describe("C134")
	assert.Error(t, err)
	_, err = tax.Describe("")
	assert.Error(t, err)
}

// Every accepted code must have resolvable 1- and 2-character prefixes.
func TestHierarchicalClosure(t *testing.T) {
	tax := NewTaxonomy()

	for _, e := range tax.All() {
		if e.Level == 1 {
			continue
		}
		_, err := tax.Describe(e.Code[:1])
		require.NoError(t, err, "primary prefix of %s must resolve", e.Code)
		_, err = tax.Describe(e.Code[:2])
		require.NoError(t, err, "subcategory prefix of %s must resolve", e.Code)
		if e.Level > 1 {
			parent, ok := tax.Lookup(e.ParentCode)
			require.True(t, ok, "parent of %s must be a table entry", e.Code)
			assert.Equal(t, e.Level-1, parent.Level)
		}
	}
}

func TestExtract(t *testing.T) {
	tax := NewTaxonomy()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"labeled section",
			"JEL Classification: C13, D43, L13",
			[]string{"C13", "D43", "L13"},
		},
		{
			"lowercase input",
			"jel codes d43 and c13",
			[]string{"D43", "C13"},
		},
		{
			"dedupe keeps first occurrence",
			"D43 then C13 then D43 again",
			[]string{"D43", "C13"},
		},
		{
			"rejects non-JEL letters",
			"room X11, code S99", // X and S are not primary letters
			nil,
		},
		{
			"ignores longer tokens",
			"model A123 and plain text",
			nil,
		},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.Extract(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	tax := NewTaxonomy()
	got := tax.Normalize([]string{" c13 ", "C13", "d43", "X99", "", "E52"})
	assert.Equal(t, []string{"C13", "D43", "E52"}, got)
}
