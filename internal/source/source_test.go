package source

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pointbreak71/econscan/internal/fetch"
	"github.com/pointbreak71/econscan/internal/jel"
	"github.com/pointbreak71/econscan/internal/paper"
)

// fakeGetter serves canned bodies keyed by URL and records requests.
type fakeGetter struct {
	bodies map[string][]byte
	err    error
	calls  []string
}

func (f *fakeGetter) Get(_ context.Context, rawURL string, params url.Values) ([]byte, error) {
	full := rawURL
	if len(params) > 0 {
		full += "?" + params.Encode()
	}
	f.calls = append(f.calls, full)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.bodies[full]
	if !ok {
		return nil, &fetch.Error{Kind: fetch.KindPermanent, URL: full, Status: 404}
	}
	return body, nil
}

func tax() *jel.Taxonomy { return jel.NewTaxonomy() }

func TestAEAExtractFromSection(t *testing.T) {
	html := `<html><body>
	  <div class="abstract">We study oligopoly pricing.</div>
	  <div class="jel">JEL Classification: C13, D43</div>
	</body></html>`

	client := &fakeGetter{bodies: map[string][]byte{
		"https://www.aeaweb.org/articles?id=10.1257/aer.100.1.1": []byte(html),
	}}
	a := NewAEA(client, tax())

	rec := &paper.Record{
		DOI:            "10.1257/aer.100.1.1",
		LandingPageURL: "https://www.aeaweb.org/articles?id=10.1257/aer.100.1.1",
	}
	ext, err := a.Extract(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"C13", "D43"}, ext.Codes)
	assert.Contains(t, ext.Raw, "JEL Classification")
}

func TestAEAFallsBackToDOIRedirect(t *testing.T) {
	client := &fakeGetter{bodies: map[string][]byte{
		"https://doi.org/10.1257/x": []byte(`<html><body><p>JEL: E52.</p></body></html>`),
	}}
	a := NewAEA(client, tax())

	rec := &paper.Record{DOI: "10.1257/x", LandingPageURL: "https://publisher.example.org/p"}
	ext, err := a.Extract(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"E52"}, ext.Codes)
	assert.Equal(t, []string{"https://doi.org/10.1257/x"}, client.calls)
}

func TestAEANotApplicableWithoutIdentity(t *testing.T) {
	a := NewAEA(&fakeGetter{}, tax())
	_, err := a.Extract(context.Background(), &paper.Record{Title: "Untitled"})
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestAEAEmptyPageIsSuccess(t *testing.T) {
	client := &fakeGetter{bodies: map[string][]byte{
		"https://doi.org/10.1257/x": []byte(`<html><body><p>No classification here.</p></body></html>`),
	}}
	a := NewAEA(client, tax())

	ext, err := a.Extract(context.Background(), &paper.Record{DOI: "10.1257/x"})
	require.NoError(t, err, "pattern-not-found must be success with zero codes")
	assert.True(t, ext.Empty())
}

func TestCrossrefSubjects(t *testing.T) {
	body := `{"message":{"DOI":"10.1257\/x","subject":["Oligopoly (D43)","Estimation (C13)"]}}`
	client := &fakeGetter{bodies: map[string][]byte{
		"https://api.crossref.org/works/10.1257/x": []byte(body),
	}}
	c := NewCrossref(client, tax())

	ext, err := c.Extract(context.Background(), &paper.Record{DOI: "10.1257/x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"D43", "C13"}, ext.Codes)
	assert.Contains(t, ext.Raw, "Oligopoly")
}

func TestCrossrefNoDOI(t *testing.T) {
	c := NewCrossref(&fakeGetter{}, tax())
	_, err := c.Extract(context.Background(), &paper.Record{Title: "No DOI"})
	assert.ErrorIs(t, err, ErrNotApplicable)
}

func TestCrossrefFetchErrorPropagates(t *testing.T) {
	wantErr := &fetch.Error{Kind: fetch.KindExhausted, URL: "x"}
	c := NewCrossref(&fakeGetter{err: wantErr}, tax())
	_, err := c.Extract(context.Background(), &paper.Record{DOI: "10.1257/x"})
	assert.True(t, fetch.IsExhausted(err))
}

func TestOpenAlexConceptsOnly(t *testing.T) {
	body := `{"id":"https://openalex.org/W99","concepts":[{"display_name":"Economics"},{"display_name":"Microeconomics"}]}`
	client := &fakeGetter{bodies: map[string][]byte{
		"https://api.openalex.org/works/W99": []byte(body),
	}}
	o := NewOpenAlex(client, tax())

	ext, err := o.Extract(context.Background(), &paper.Record{OpenAlexID: "https://openalex.org/W99"})
	require.NoError(t, err)
	assert.True(t, ext.Empty(), "concepts alone must not become codes")
	assert.Equal(t, "Economics, Microeconomics", ext.Raw)
}

func TestRePEcSearch(t *testing.T) {
	html := `<html><body><dl><dt>Some Paper</dt><dd>JEL codes: L13 D82</dd></dl></body></html>`
	client := &fakeGetter{bodies: map[string][]byte{
		"https://ideas.repec.org/cgi-bin/htsearch?q=10.1257%2Fx": []byte(html),
	}}
	r := NewRePEc(client, tax())

	ext, err := r.Extract(context.Background(), &paper.Record{DOI: "10.1257/x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"L13", "D82"}, ext.Codes)
}

func TestSnippetTruncatesOnRuneBoundary(t *testing.T) {
	short := "JEL: C13"
	assert.Equal(t, short, snippet(short))

	// A two-byte rune straddling the cap must be dropped whole, not split.
	long := strings.Repeat("a", rawSnippetLen-1) + "é" + strings.Repeat("b", 20)
	got := snippet(long)
	assert.True(t, utf8.ValidString(got))
	assert.Len(t, got, rawSnippetLen-1)

	ascii := strings.Repeat("x", rawSnippetLen+50)
	assert.Len(t, snippet(ascii), rawSnippetLen)
}

func TestBuildOrderAndUnknown(t *testing.T) {
	client := &fakeGetter{}
	sources, err := Build([]string{"aea", "crossref", "openalex", "repec"}, client, tax())
	require.NoError(t, err)
	require.Len(t, sources, 4)
	var names []string
	for _, s := range sources {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"aea", "crossref", "openalex", "repec"}, names)

	_, err = Build([]string{"scopus"}, client, tax())
	assert.Error(t, err)

	assert.False(t, errors.Is(err, ErrNotApplicable))
}
