package taste

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// rateLimiter enforces a minimum interval between outbound requests. A single
// limiter instance is shared across all sessions using one client, so Wait
// must be safe under concurrent callers; rate.Limiter updates its internal
// timestamp atomically.
type rateLimiter struct {
	limiter *rate.Limiter
}

func newRateLimiter(minInterval time.Duration) *rateLimiter {
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Wait blocks until at least the minimum interval has elapsed since the
// previous permit, or until the context is cancelled.
func (r *rateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
