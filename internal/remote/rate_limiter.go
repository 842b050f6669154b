package remote

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default translator QPS.
const DefaultRateLimit = 10

// RateLimiter caps outgoing translator calls across all callers.
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(qps), qps), // burst = qps
	}
}

// Wait blocks until a token is available or ctx ends. A nil limiter never waits.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}
