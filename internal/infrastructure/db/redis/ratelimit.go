package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter bounds request rates per key using Redis INCR with a
// window-scoped expiry. Key format: ratelimit:<scope>:<key>
type FixedWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per
// window for each key.
func NewFixedWindowLimiter(client *redis.Client, limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &FixedWindowLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether another request under key fits in the current
// window. The first hit of a window sets the expiry.
func (l *FixedWindowLimiter) Allow(ctx context.Context, scope, key string) (bool, error) {
	k := l.key(scope, key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}

func (l *FixedWindowLimiter) key(scope, key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, key)
}
