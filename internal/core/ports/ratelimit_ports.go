package ports

import (
	"context"
	"time"
)

type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RateLimiter is a fixed-window counter keyed by caller identity. Check
// never reports an error: when the counter backend is unreachable the
// request is allowed.
type RateLimiter interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) RateLimitResult
}
