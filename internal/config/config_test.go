package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "econscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const minimalConfig = `
journals:
  - key: aer
    name: American Economic Review
years:
  start: 2015
  end: 2020
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"aea", "crossref", "openalex", "repec"}, cfg.Enrichment.Sources)
	assert.Equal(t, []string{"csv", "xlsx"}, cfg.Output.Formats)
	assert.Equal(t, 3, cfg.Scraping.MaxRetries)
	assert.Equal(t, time.Second, cfg.HostDelay())
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout())
	assert.True(t, cfg.RobotsEnabled())
	assert.Equal(t, filepath.Join("data", "raw"), cfg.RawDir())
	assert.Equal(t, filepath.Join("data", "enriched"), cfg.EnrichedDir())
	assert.Equal(t, filepath.Join("data", "cache", "fetch.db"), cfg.Enrichment.CachePath)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
journals:
  - key: aer
    name: American Economic Review
  - key: jpe
    openalex_id: S123
years:
  start: 2010
  end: 2012
scraping:
  user_agent: "study-bot/2.0"
  rate_limit_delay: 0.5
  max_retries: 5
  timeout: 30
  respect_robots_txt: false
enrichment:
  sources: [crossref, repec]
  cache_path: /tmp/cache.db
output:
  dir: out
  formats: [csv]
paths:
  data_dir: /srv/data
`))
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.HostDelay())
	assert.Equal(t, 5, cfg.Scraping.MaxRetries)
	assert.False(t, cfg.RobotsEnabled())
	assert.Equal(t, []string{"crossref", "repec"}, cfg.Enrichment.Sources)
	assert.Equal(t, "/tmp/cache.db", cfg.Enrichment.CachePath)
	assert.Equal(t, filepath.Join("/srv/data", "raw"), cfg.RawDir())
}

func TestLoadRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no journals", "years: {start: 2010, end: 2012}"},
		{"missing key", "journals: [{name: AER}]\nyears: {start: 2010, end: 2012}"},
		{"no identity", "journals: [{key: aer}]\nyears: {start: 2010, end: 2012}"},
		{"duplicate key", "journals: [{key: aer, name: A}, {key: aer, name: B}]\nyears: {start: 2010, end: 2012}"},
		{"missing years", "journals: [{key: aer, name: AER}]"},
		{"inverted years", "journals: [{key: aer, name: AER}]\nyears: {start: 2012, end: 2010}"},
		{"unknown source", minimalConfig + "enrichment: {sources: [scopus]}"},
		{"unknown format", minimalConfig + "output: {formats: [parquet]}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestFetchUserAgentAppendsMailto(t *testing.T) {
	t.Setenv("ECONSCAN_MAILTO", "team@example.edu")
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)
	assert.Equal(t,
		"econscan/1.0 (economics journal metadata pipeline) (mailto:team@example.edu)",
		cfg.FetchUserAgent())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
