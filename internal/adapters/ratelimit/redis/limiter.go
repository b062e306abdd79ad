package redis

import (
	"context"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/scrandle/api/internal/core/ports"
)

type limiter struct {
	client *goredis.Client
}

// NewLimiter builds a fixed-window rate limiter on a redis counter. One
// INCR per request; the key expires at the end of the window, so the
// count resets on its own.
func NewLimiter(client *goredis.Client) ports.RateLimiter {
	return &limiter{
		client: client,
	}
}

func (l *limiter) Check(ctx context.Context, key string, limit int, window time.Duration) ports.RateLimitResult {
	fullKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, fullKey).Result()
	if err != nil {
		// fail open: an unreachable counter backend must not take the
		// voting endpoints down with it
		log.Printf("rate limit check failed, allowing request: %v", err)
		return ports.RateLimitResult{Allowed: true, Remaining: limit, ResetAt: time.Now().Add(window)}
	}

	if count == 1 {
		if err := l.client.Expire(ctx, fullKey, window).Err(); err != nil {
			log.Printf("failed to set rate limit expiry for %s: %v", fullKey, err)
		}
	}

	ttl, err := l.client.TTL(ctx, fullKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return ports.RateLimitResult{
		Allowed:   count <= int64(limit),
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl),
	}
}
