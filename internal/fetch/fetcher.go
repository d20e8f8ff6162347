// Package fetch provides the single network-facing primitive for the
// pipeline: an HTTP fetcher with crawl-policy gating, per-host rate
// limiting, retry with exponential backoff, and write-through response
// caching. Every source adapter goes through it.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pointbreak71/econscan/internal/fetchcache"
)

// DefaultTimeout is the per-attempt HTTP timeout.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the scraper to remote hosts.
const DefaultUserAgent = "econscan/1.0 (economics journal metadata pipeline)"

// maxBodyBytes caps response bodies; journal pages and API answers are
// well under this.
const maxBodyBytes = 8 * 1024 * 1024

// PolicyGate answers whether a URL may be fetched at all.
type PolicyGate interface {
	Allowed(ctx context.Context, target *url.URL) bool
}

// Fetcher is a rate-limited, retrying, caching HTTP client.
type Fetcher struct {
	client    *http.Client
	cache     *fetchcache.Cache
	gate      PolicyGate
	policy    Policy
	interval  time.Duration // minimum inter-request delay per host
	userAgent string
	log       zerolog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) { f.client = hc }
}

// WithGate sets the crawl-policy gate. Without one, all URLs are allowed.
func WithGate(g PolicyGate) Option {
	return func(f *Fetcher) { f.gate = g }
}

// WithPolicy sets the retry policy.
func WithPolicy(p Policy) Option {
	return func(f *Fetcher) { f.policy = p }
}

// WithHostInterval sets the minimum delay between requests to one host.
func WithHostInterval(d time.Duration) Option {
	return func(f *Fetcher) { f.interval = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithLogger sets the fetcher's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Fetcher) { f.log = log }
}

// NewFetcher creates a Fetcher backed by cache. A nil cache disables
// caching (used in tests only).
func NewFetcher(cache *fetchcache.Cache, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		cache:     cache,
		policy:    DefaultPolicy(),
		interval:  time.Second,
		userAgent: DefaultUserAgent,
		log:       zerolog.Nop(),
		limiters:  make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get fetches rawURL with the given query parameters. Successful bodies are
// cached before being returned; a cache hit skips the network entirely and
// is never revalidated. Failures are classified per the error taxonomy:
// callers should treat Exhausted and Permanent as "source unavailable".
func (f *Fetcher) Get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{Kind: KindPermanent, URL: rawURL, Err: err}
	}
	if len(params) > 0 {
		target.RawQuery = params.Encode()
	}
	full := target.String()

	key := fetchcache.Key(http.MethodGet, rawURL, params)
	if f.cache != nil {
		body, hit, err := f.cache.Get(key)
		if err != nil {
			return nil, fmt.Errorf("cache lookup: %w", err)
		}
		if hit {
			f.log.Debug().Str("url", full).Msg("cache hit")
			return body, nil
		}
	}

	if f.gate != nil && !f.gate.Allowed(ctx, target) {
		return nil, &Error{Kind: KindPolicyDenied, URL: full}
	}

	var lastErr error
	for attempt := 0; attempt < f.policy.MaxAttempts; attempt++ {
		if err := f.waitTurn(ctx, target.Host); err != nil {
			return nil, err
		}

		body, ferr := f.doAttempt(ctx, full)
		if ferr == nil {
			if f.cache != nil {
				if err := f.cache.Put(key, full, body); err != nil {
					return nil, fmt.Errorf("caching response: %w", err)
				}
			}
			return body, nil
		}

		if ferr.Kind == KindPermanent {
			return nil, ferr
		}
		lastErr = ferr

		if attempt < f.policy.MaxAttempts-1 {
			delay := f.policy.Delay(attempt)
			f.log.Debug().Str("url", full).Int("attempt", attempt+1).
				Dur("backoff", delay).Msg("transient fetch failure, retrying")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return nil, &Error{Kind: KindExhausted, URL: full, Err: lastErr}
}

// doAttempt performs one HTTP GET and classifies the outcome.
func (f *Fetcher) doAttempt(ctx context.Context, full string) ([]byte, *Error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, http.NoBody)
	if err != nil {
		return nil, &Error{Kind: KindPermanent, URL: full, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		// Timeouts and connection errors are transient.
		return nil, &Error{Kind: KindTransient, URL: full, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to body read
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &Error{Kind: KindTransient, URL: full, Status: resp.StatusCode}
	default:
		return nil, &Error{Kind: KindPermanent, URL: full, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Kind: KindTransient, URL: full, Err: err}
	}
	return body, nil
}

// waitTurn blocks until the host's rate limiter permits another request.
func (f *Fetcher) waitTurn(ctx context.Context, host string) error {
	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(f.interval), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}
