// Package config loads and validates the pipeline configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pointbreak71/econscan/internal/paper"
)

// Journal is one venue to collect.
type Journal struct {
	Key        string `yaml:"key"`
	Name       string `yaml:"name"`
	OpenAlexID string `yaml:"openalex_id"`
}

// Years is the inclusive publication year range.
type Years struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Scraping controls the shared HTTP fetcher.
type Scraping struct {
	UserAgent      string  `yaml:"user_agent"`
	RateLimitDelay float64 `yaml:"rate_limit_delay"` // seconds between same-host requests
	MaxRetries     int     `yaml:"max_retries"`
	Timeout        int     `yaml:"timeout"` // seconds per request
	RespectRobots  *bool   `yaml:"respect_robots_txt"`
}

// Enrichment selects and orders the classification sources.
type Enrichment struct {
	Sources   []string `yaml:"sources"`
	CachePath string   `yaml:"cache_path"`
}

// Output controls dataset export.
type Output struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

// Paths locates the working data tree.
type Paths struct {
	DataDir string `yaml:"data_dir"`
}

// Config is the parsed econscan.yaml plus environment-sourced settings.
type Config struct {
	Journals   []Journal  `yaml:"journals"`
	Years      Years      `yaml:"years"`
	Scraping   Scraping   `yaml:"scraping"`
	Enrichment Enrichment `yaml:"enrichment"`
	Output     Output     `yaml:"output"`
	Paths      Paths      `yaml:"paths"`

	// Mailto is the polite-pool contact address, read from the
	// ECONSCAN_MAILTO environment variable (optionally via .env).
	Mailto string `yaml:"-"`
}

// Load reads, defaults and validates the configuration at path. A .env
// file in the working directory is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // optional

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Mailto = os.Getenv("ECONSCAN_MAILTO")

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Scraping.UserAgent == "" {
		c.Scraping.UserAgent = "econscan/1.0 (economics journal metadata pipeline)"
	}
	if c.Scraping.RateLimitDelay <= 0 {
		c.Scraping.RateLimitDelay = 1.0
	}
	if c.Scraping.MaxRetries <= 0 {
		c.Scraping.MaxRetries = 3
	}
	if c.Scraping.Timeout <= 0 {
		c.Scraping.Timeout = 15
	}
	if len(c.Enrichment.Sources) == 0 {
		c.Enrichment.Sources = []string{
			paper.SourceAEA, paper.SourceCrossref, paper.SourceOpenAlex, paper.SourceRePEc,
		}
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = "data"
	}
	if c.Enrichment.CachePath == "" {
		c.Enrichment.CachePath = filepath.Join(c.Paths.DataDir, "cache", "fetch.db")
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"csv", "xlsx"}
	}
}

func (c *Config) validate() error {
	if len(c.Journals) == 0 {
		return fmt.Errorf("config must define at least one journal")
	}
	seen := make(map[string]bool)
	for i, j := range c.Journals {
		if j.Key == "" {
			return fmt.Errorf("journal entry %d must have a 'key'", i+1)
		}
		if j.Name == "" && j.OpenAlexID == "" {
			return fmt.Errorf("journal %q must have a 'name' or an 'openalex_id'", j.Key)
		}
		if seen[j.Key] {
			return fmt.Errorf("duplicate journal key %q", j.Key)
		}
		seen[j.Key] = true
	}

	if c.Years.Start == 0 || c.Years.End == 0 {
		return fmt.Errorf("years.start and years.end are required")
	}
	if c.Years.Start > c.Years.End {
		return fmt.Errorf("years.start (%d) must be <= years.end (%d)", c.Years.Start, c.Years.End)
	}

	known := map[string]bool{
		paper.SourceAEA:      true,
		paper.SourceCrossref: true,
		paper.SourceOpenAlex: true,
		paper.SourceRePEc:    true,
	}
	for _, s := range c.Enrichment.Sources {
		if !known[s] {
			return fmt.Errorf("unknown enrichment source %q", s)
		}
	}

	for _, f := range c.Output.Formats {
		if f != "csv" && f != "xlsx" {
			return fmt.Errorf("unknown output format %q (want csv or xlsx)", f)
		}
	}
	return nil
}

// RawDir is where journal-year listings land.
func (c *Config) RawDir() string { return filepath.Join(c.Paths.DataDir, "raw") }

// EnrichedDir is where enriched files and checkpoints land.
func (c *Config) EnrichedDir() string { return filepath.Join(c.Paths.DataDir, "enriched") }

// HostDelay is the minimum spacing between requests to one host.
func (c *Config) HostDelay() time.Duration {
	return time.Duration(c.Scraping.RateLimitDelay * float64(time.Second))
}

// HTTPTimeout is the per-request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.Scraping.Timeout) * time.Second
}

// RobotsEnabled reports whether the robots.txt gate applies. It defaults
// to on.
func (c *Config) RobotsEnabled() bool {
	return c.Scraping.RespectRobots == nil || *c.Scraping.RespectRobots
}

// FetchUserAgent is the outgoing User-Agent, with the polite-pool contact
// appended when configured.
func (c *Config) FetchUserAgent() string {
	if c.Mailto == "" {
		return c.Scraping.UserAgent
	}
	return fmt.Sprintf("%s (mailto:%s)", c.Scraping.UserAgent, c.Mailto)
}
