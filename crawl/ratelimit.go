package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/nyaa"
	"golang.org/x/time/rate"
)

var _ nyaa.HostLimiter = (*HostLimiter)(nil)

// HostLimiter rate limits requests with one token bucket per host, so that
// walking several listings on different sites does not slow either down.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host, with a burst of 1.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to host is allowed.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
