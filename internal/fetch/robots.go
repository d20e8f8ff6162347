package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/temoto/robotstxt"

	"github.com/pointbreak71/econscan/internal/fetchcache"
)

// maxRobotsBodyBytes limits the size of robots.txt responses we will read.
const maxRobotsBodyBytes = 512 * 1024

// RobotsGate checks per-host crawl policy before requests go out. The
// robots.txt body is stored in the fetch cache (so re-runs are free) and the
// parsed form is held per host for the life of the process. A missing or
// unreadable robots.txt allows everything, standard crawling practice.
type RobotsGate struct {
	httpClient *http.Client
	cache      *fetchcache.Cache
	userAgent  string

	mu     sync.Mutex
	parsed map[string]*robotstxt.RobotsData // keyed by host; nil value = allow all
}

// NewRobotsGate creates a gate that fetches robots.txt with the given
// client and persists bodies in cache.
func NewRobotsGate(httpClient *http.Client, cache *fetchcache.Cache, userAgent string) *RobotsGate {
	return &RobotsGate{
		httpClient: httpClient,
		cache:      cache,
		userAgent:  userAgent,
		parsed:     make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether the target URL may be fetched under the host's
// crawl policy.
func (g *RobotsGate) Allowed(ctx context.Context, target *url.URL) bool {
	host := strings.ToLower(target.Host)
	if host == "" {
		return false
	}

	data := g.hostData(ctx, host, target.Scheme)
	if data == nil {
		return true
	}
	return data.TestAgent(target.Path, g.userAgent)
}

// hostData returns the parsed robots.txt for a host, fetching it on first
// use. Returns nil when the policy is allow-all.
func (g *RobotsGate) hostData(ctx context.Context, host, scheme string) *robotstxt.RobotsData {
	g.mu.Lock()
	data, ok := g.parsed[host]
	g.mu.Unlock()
	if ok {
		return data
	}

	if scheme == "" {
		scheme = "https"
	}
	robotsURL := scheme + "://" + host + "/robots.txt"

	body, found := g.cachedBody(robotsURL)
	if !found {
		body = g.fetchBody(ctx, robotsURL)
	}

	data = parseRobots(body)

	g.mu.Lock()
	g.parsed[host] = data
	g.mu.Unlock()
	return data
}

func (g *RobotsGate) cachedBody(robotsURL string) ([]byte, bool) {
	if g.cache == nil {
		return nil, false
	}
	key := fetchcache.Key(http.MethodGet, robotsURL, nil)
	body, hit, err := g.cache.Get(key)
	if err != nil || !hit {
		return nil, false
	}
	return body, true
}

// fetchBody retrieves robots.txt and caches the body. Any failure returns
// nil (allow all); the failure itself is not cached, so a later run retries.
func (g *RobotsGate) fetchBody(ctx context.Context, robotsURL string) []byte {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, http.NoBody)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBodyBytes))
	if err != nil {
		return nil
	}

	if g.cache != nil {
		key := fetchcache.Key(http.MethodGet, robotsURL, nil)
		_ = g.cache.Put(key, robotsURL, body)
	}
	return body
}

// parseRobots parses a robots.txt body, mapping empty or malformed input
// to allow-all (nil).
func parseRobots(body []byte) *robotstxt.RobotsData {
	if len(body) == 0 {
		return nil
	}
	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}
	return data
}
