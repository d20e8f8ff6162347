package listing

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak71/econscan/internal/paper"
	"github.com/pointbreak71/econscan/internal/runctx"
)

// cursorGetter serves scripted listing pages keyed by cursor value.
type cursorGetter struct {
	pages  map[string]string
	calls  int
	params []url.Values
}

func (g *cursorGetter) Get(_ context.Context, _ string, params url.Values) ([]byte, error) {
	g.calls++
	g.params = append(g.params, params)
	return []byte(g.pages[params.Get("cursor")]), nil
}

func testLister(t *testing.T, g Getter) (*Lister, string) {
	t.Helper()
	rawDir := t.TempDir()
	return New(runctx.New(zerolog.Nop()), g, rawDir), rawDir
}

func TestFetchJournalYearPaginates(t *testing.T) {
	g := &cursorGetter{pages: map[string]string{
		"*": `{"results":[
			{"id":"https://openalex.org/W1","doi":"https://doi.org/10.1257/AER.1","title":"First",
			 "publication_year":2020,
			 "authorships":[{"author":{"display_name":"A. Smith"}},{"author":{"display_name":"B. Jones"}}],
			 "abstract_inverted_index":{"Hello":[0],"world":[1]},
			 "primary_location":{"landing_page_url":"https://www.aeaweb.org/articles?id=10.1257/aer.1"},
			 "concepts":[{"display_name":"Economics"}]},
			{"id":"https://openalex.org/W2","title":"Second","publication_year":2020}
		],"meta":{"next_cursor":"page2"}}`,
		"page2": `{"results":[
			{"id":"https://openalex.org/W3","doi":"doi:10.1257/AER.3","title":"Third","publication_year":2020}
		],"meta":{"next_cursor":null}}`,
	}}
	l, _ := testLister(t, g)
	j := Journal{Key: "aer", Name: "American Economic Review"}

	require.NoError(t, l.FetchJournalYear(context.Background(), j, 2020))
	assert.Equal(t, 2, g.calls)

	records, err := paper.ReadFile(l.outputPath(j, 2020))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "aer", first.JournalKey)
	assert.Equal(t, "10.1257/aer.1", first.DOI, "DOI is stored normalized")
	assert.Equal(t, []string{"A. Smith", "B. Jones"}, first.Authors)
	assert.Equal(t, "Hello world", first.Abstract)
	assert.Equal(t, "https://www.aeaweb.org/articles?id=10.1257/aer.1", first.LandingPageURL)
	assert.Equal(t, []string{"Economics"}, first.Concepts)

	assert.Empty(t, records[1].DOI)
	assert.Equal(t, "10.1257/aer.3", records[2].DOI)
}

func TestFetchJournalYearSkipsExisting(t *testing.T) {
	g := &cursorGetter{}
	l, rawDir := testLister(t, g)
	j := Journal{Key: "aer", Name: "American Economic Review"}

	existing := filepath.Join(rawDir, "aer", "2020.jsonl")
	require.NoError(t, paper.WriteAll(existing, []paper.Record{{Title: "kept"}}))

	require.NoError(t, l.FetchJournalYear(context.Background(), j, 2020))
	assert.Zero(t, g.calls, "existing listings are never refetched")

	records, err := paper.ReadFile(existing)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Title)
}

func TestFilterPrefersSourceID(t *testing.T) {
	l, _ := testLister(t, &cursorGetter{})

	byID := l.filter(Journal{Key: "aer", SourceID: "S23254222"}, 2020)
	assert.Equal(t, "publication_year:2020,primary_location.source.id:S23254222", byID)

	byName := l.filter(Journal{Key: "aer", Name: "American Economic Review"}, 2020)
	assert.Equal(t, `publication_year:2020,primary_location.source.display_name:"American Economic Review"`, byName)
}

func TestFetchAllCoversRange(t *testing.T) {
	g := &cursorGetter{pages: map[string]string{
		"*": `{"results":[],"meta":{"next_cursor":null}}`,
	}}
	l, _ := testLister(t, g)

	journals := []Journal{{Key: "aer", Name: "American Economic Review"}, {Key: "jpe", Name: "Journal of Political Economy"}}
	require.NoError(t, l.FetchAll(context.Background(), journals, 2019, 2020))
	assert.Equal(t, 4, g.calls)

	for _, p := range g.params {
		assert.Equal(t, "200", p.Get("per-page"))
	}
}
