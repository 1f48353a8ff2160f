package ratelimit

import (
	"context"
	"testing"
	"time"

	"fleet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(max int, window time.Duration) (*memoryLimiter, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(&config.RateLimitConfig{
		MaxRequests: max,
		Window:      window,
	}).(*memoryLimiter)
	limiter.now = func() time.Time { return now }
	limiter.randF = func() float64 { return 1 } // disable the sweep unless a test opts in

	return limiter, &now
}

func TestMemoryLimiter_AllowWithinWindow(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := limiter.Allow(ctx, "user:42")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 3-(i+1), result.Remaining)
	}

	result, err := limiter.Allow(ctx, "user:42")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestMemoryLimiter_FixedWindowBoundary(t *testing.T) {
	limiter, now := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	// First request at t=0 consumes the whole window.
	result, err := limiter.Allow(ctx, "user:42")
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	// Still inside the window at t=window.
	*now = now.Add(time.Minute)
	result, err = limiter.Allow(ctx, "user:42")
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	// One tick past the reset lands in a fresh window.
	*now = now.Add(time.Millisecond)
	result, err = limiter.Allow(ctx, "user:42")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestMemoryLimiter_IdentifiersAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	result, err := limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = limiter.Allow(ctx, "user:1")
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	result, err = limiter.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestMemoryLimiter_ResetAtSurvivesDeniedChecks(t *testing.T) {
	limiter, now := newTestLimiter(1, time.Minute)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "user:42")
	require.NoError(t, err)

	*now = now.Add(30 * time.Second)
	denied, err := limiter.Allow(ctx, "user:42")
	require.NoError(t, err)
	assert.False(t, denied.Allowed)
	// The window anchor never moves on denied requests.
	assert.Equal(t, first.ResetAt, denied.ResetAt)
	assert.Equal(t, 30*time.Second, denied.RetryAfter(*now))
}

func TestMemoryLimiter_SweepDropsExpiredEntries(t *testing.T) {
	limiter, now := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "user:old")
	require.NoError(t, err)
	_, err = limiter.Allow(ctx, "user:fresh")
	require.NoError(t, err)

	// Force the sweep on the next call, after user:old's window has passed.
	*now = now.Add(2 * time.Minute)
	limiter.randF = func() float64 { return 0 }

	_, err = limiter.Allow(ctx, "user:fresh")
	require.NoError(t, err)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.entries, "user:old")
	assert.Contains(t, limiter.entries, "user:fresh")
}

func TestResult_RetryAfterFloorsAtZero(t *testing.T) {
	now := time.Now()
	result := &Result{ResetAt: now.Add(-time.Second)}

	assert.Equal(t, time.Duration(0), result.RetryAfter(now))
}
