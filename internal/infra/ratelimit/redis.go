package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fleet/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the counter for the current window atomically.
// The key expires with the window, so a new window starts as a fresh key.
// Returns {count, pttl_ms}.
var fixedWindowScript = redis.NewScript(`
    local count = redis.call('INCR', KEYS[1])
    if count == 1 then
        redis.call('PEXPIRE', KEYS[1], ARGV[1])
    end
    local ttl = redis.call('PTTL', KEYS[1])
    return { count, ttl }
`)

// redisLimiter is the shared fixed-window counter. All instances pointing at
// the same Redis see one authoritative count per identifier.
type redisLimiter struct {
	client *redis.Client

	prefix      string
	maxRequests int
	window      time.Duration
}

// NewRedisLimiter is the constructor for redisLimiter.
func NewRedisLimiter(cfg *config.RateLimitConfig, client *redis.Client) Limiter {
	return &redisLimiter{
		client:      client,
		prefix:      cfg.Prefix,
		maxRequests: cfg.MaxRequests,
		window:      cfg.Window,
	}
}

// Allow consumes one request slot for the identifier.
func (l *redisLimiter) Allow(ctx context.Context, identifier string) (*Result, error) {
	key := strings.Join([]string{l.prefix, identifier}, ":")
	now := time.Now()

	vals, err := fixedWindowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "rate limit script failed")
	}

	arr, ok := vals.([]interface{})
	if !ok || len(arr) != 2 {
		return nil, errors.Errorf("unexpected rate limit script result: %#v", vals)
	}

	count := asInt64(arr[0])
	ttlMs := asInt64(arr[1])
	if ttlMs < 0 {
		ttlMs = l.window.Milliseconds()
	}
	resetAt := now.Add(time.Duration(ttlMs) * time.Millisecond)

	if count > int64(l.maxRequests) {
		return &Result{
			Allowed:   false,
			Limit:     l.maxRequests,
			Remaining: 0,
			ResetAt:   resetAt,
		}, nil
	}

	return &Result{
		Allowed:   true,
		Limit:     l.maxRequests,
		Remaining: l.maxRequests - int(count),
		ResetAt:   resetAt,
	}, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}
