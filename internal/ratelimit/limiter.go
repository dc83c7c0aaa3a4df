package ratelimit

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter throttles page fetches, typically per host, so a batch scan
// does not hammer a single site.
type RateLimiter interface {
	// Wait blocks until a request for the given URL can proceed.
	Wait(ctx context.Context, urlStr string) error

	// Allow reports whether a request for the given URL can proceed
	// immediately without blocking.
	Allow(urlStr string) bool
}

// DomainLimiter provides per-domain token-bucket rate limiting
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	perHost  rate.Limit
	burst    int
}

// NewDomainLimiter creates a new rate limiter with the specified per-host rate
func NewDomainLimiter(requestsPerSecond float64, burst int) *DomainLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5.0
	}
	if burst <= 0 {
		burst = 10
	}

	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Wait blocks until the request for the given URL can proceed
func (dl *DomainLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return dl.limiterFor(urlStr).Wait(ctx)
}

// Allow reports whether the request can proceed without blocking
func (dl *DomainLimiter) Allow(urlStr string) bool {
	return dl.limiterFor(urlStr).Allow()
}

func (dl *DomainLimiter) limiterFor(urlStr string) *rate.Limiter {
	host := hostOf(urlStr)

	dl.mu.RLock()
	lim, ok := dl.limiters[host]
	dl.mu.RUnlock()
	if ok {
		return lim
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()
	if lim, ok = dl.limiters[host]; ok {
		return lim
	}
	lim = rate.NewLimiter(dl.perHost, dl.burst)
	dl.limiters[host] = lim
	return lim
}

func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "default"
	}
	return u.Host
}
