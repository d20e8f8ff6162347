package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies a fetch failure. The resolver decides what to do with a
// failed source based on the kind alone.
type Kind int

const (
	// KindTransient is a retryable failure: timeout, connection error,
	// HTTP 5xx, or HTTP 429.
	KindTransient Kind = iota
	// KindPermanent is a non-retryable failure: HTTP 4xx other than 429,
	// or a malformed response.
	KindPermanent
	// KindExhausted means the retry budget ran out on transient failures.
	// Callers must treat this as "source unavailable", not as fatal.
	KindExhausted
	// KindPolicyDenied means the host's crawl policy forbids the path.
	// Never retried, never escalated.
	KindPolicyDenied
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	case KindExhausted:
		return "exhausted"
	case KindPolicyDenied:
		return "policy_denied"
	default:
		return "unknown"
	}
}

// Error is a classified fetch failure.
type Error struct {
	Kind   Kind
	URL    string
	Status int // HTTP status when one was received, else 0
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %s (HTTP %d)", e.URL, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsExhausted reports whether err is a retry-budget exhaustion.
func IsExhausted(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindExhausted
}

// IsPolicyDenied reports whether err is a crawl-policy denial.
func IsPolicyDenied(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindPolicyDenied
}

// IsPermanent reports whether err is a non-retryable failure.
func IsPermanent(err error) bool {
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == KindPermanent
}
