package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles LLM summary calls during batch runs so a large manifest
// does not hammer the provider API. The engine itself performs no I/O and is
// never rate limited.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing requestsPerSecond with the given burst
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until the next call is allowed or the context is cancelled
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a call may proceed without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
