package fetch

import "time"

// Policy parametrizes retry behavior for any fallible operation: attempt
// count and a geometric backoff schedule. The zero value is unusable; use
// DefaultPolicy or build one from configuration.
type Policy struct {
	MaxAttempts int           // Total attempts including the first
	BaseDelay   time.Duration // Delay before the first retry
	Multiplier  float64       // Geometric growth factor
	MaxDelay    time.Duration // Cap on any single delay
}

// DefaultPolicy matches the scraping defaults: 3 attempts, 1s base delay
// doubling up to 30s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Multiplier:  2.0,
		MaxDelay:    30 * time.Second,
	}
}

// Delay returns the backoff delay after the given zero-based attempt:
// BaseDelay * Multiplier^attempt, capped at MaxDelay.
func (p Policy) Delay(attempt int) time.Duration {
	d := float64(p.BaseDelay)
	for i := 0; i < attempt; i++ {
		d *= p.Multiplier
	}
	if max := float64(p.MaxDelay); p.MaxDelay > 0 && d > max {
		d = max
	}
	return time.Duration(d)
}
