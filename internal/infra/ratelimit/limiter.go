// Package ratelimit implements a fixed-window request limiter. The Redis
// implementation is authoritative across instances; the in-memory one is a
// per-process fallback for development and for when Redis is unavailable.
package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of one limiter check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns the duration until the current window resets, floored
// at zero.
func (r *Result) RetryAfter(now time.Time) time.Duration {
	d := r.ResetAt.Sub(now)
	if d < 0 {
		return 0
	}

	return d
}

// Limiter counts requests per identifier within a fixed window.
type Limiter interface {
	// Allow consumes one request slot for the identifier. It reports whether
	// the request fits inside the current window.
	Allow(ctx context.Context, identifier string) (*Result, error)
}
