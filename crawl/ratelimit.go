package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/docbot"
	"golang.org/x/time/rate"
)

var _ docbot.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests per host using token buckets, so a
// search fanning out over one documentation site does not flood it while
// requests to other hosts proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with the given burst. A non-positive rps disables limiting.
// Burst is raised to 1 if smaller.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    max(burst, 1),
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, d.burst)
		d.limiters[domain] = l
	}
	return l
}
