package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/worldfacts"
	"golang.org/x/time/rate"
)

var _ worldfacts.DomainLimiter = (*HostLimiter)(nil)

// HostLimiter keeps one token bucket per host so that parallel workers stay
// polite towards each site while different hosts proceed independently.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewHostLimiter creates a limiter allowing rps requests per second to each
// host, with the given burst. A non-positive rps disables limiting; a burst
// below one is raised to one.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    max(burst, 1),
	}
}

// Wait blocks until the host's bucket has a token. Host names are compared
// case-insensitively. Returns an error if ctx ends first.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	host = strings.ToLower(host)

	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
