package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fleet/config"
)

// sweepProbability is the chance that one Allow call triggers a full scan
// deleting expired windows. Keeps memory bounded under low traffic without
// a background goroutine.
const sweepProbability = 0.01

type windowEntry struct {
	count   int
	resetAt time.Time
}

// memoryLimiter is a process-local fixed-window counter map. It is race-free
// within one process but provides no cross-instance mutual exclusion, so under
// horizontal scaling the effective limit is per instance.
type memoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry

	maxRequests int
	window      time.Duration

	now   func() time.Time
	randF func() float64
}

// NewMemoryLimiter is the constructor for memoryLimiter.
func NewMemoryLimiter(cfg *config.RateLimitConfig) Limiter {
	return &memoryLimiter{
		entries:     make(map[string]*windowEntry),
		maxRequests: cfg.MaxRequests,
		window:      cfg.Window,
		now:         time.Now,
		randF:       rand.Float64,
	}
}

// Allow consumes one request slot for the identifier.
func (l *memoryLimiter) Allow(_ context.Context, identifier string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if l.randF() < sweepProbability {
		l.sweepLocked(now)
	}

	entry, ok := l.entries[identifier]
	if !ok || now.After(entry.resetAt) {
		entry = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		l.entries[identifier] = entry

		return &Result{
			Allowed:   true,
			Limit:     l.maxRequests,
			Remaining: l.maxRequests - 1,
			ResetAt:   entry.resetAt,
		}, nil
	}

	entry.count++
	if entry.count > l.maxRequests {
		return &Result{
			Allowed:   false,
			Limit:     l.maxRequests,
			Remaining: 0,
			ResetAt:   entry.resetAt,
		}, nil
	}

	return &Result{
		Allowed:   true,
		Limit:     l.maxRequests,
		Remaining: l.maxRequests - entry.count,
		ResetAt:   entry.resetAt,
	}, nil
}

// sweepLocked deletes entries whose window has passed. Caller holds the lock.
func (l *memoryLimiter) sweepLocked(now time.Time) {
	for identifier, entry := range l.entries {
		if now.After(entry.resetAt) {
			delete(l.entries, identifier)
		}
	}
}
