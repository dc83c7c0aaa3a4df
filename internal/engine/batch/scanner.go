// internal/engine/batch/scanner.go
package batch

import (
	"context"
	"sync"

	"github.com/law-makers/contactscan/internal/extract"
	"github.com/law-makers/contactscan/internal/proxy"
	"github.com/law-makers/contactscan/internal/reqctx"
	"github.com/law-makers/contactscan/pkg/models"
)

// Fetcher is the portion of a scraper the batch scanner needs
type Fetcher interface {
	Fetch(opts models.RequestOptions) (*models.PageData, error)
}

// Scanner fans a list of scan requests out over a fetcher and runs contact
// extraction on each fetched page. Requests are grouped by domain so the
// per-domain rate limiter sees them in order.
type Scanner struct {
	fetcher     Fetcher
	proxies     *proxy.Pool
	concurrency int
}

// New creates a batch Scanner.
// If concurrency <= 0, it auto-tunes based on system resources.
func New(fetcher Fetcher, concurrency int) *Scanner {
	if concurrency <= 0 {
		concurrency = OptimalConcurrency()
	}
	return &Scanner{
		fetcher:     fetcher,
		concurrency: concurrency,
	}
}

// SetProxyPool attaches a rotating proxy pool; each request gets the next
// healthy proxy, and fetch failures mark that proxy failed
func (s *Scanner) SetProxyPool(p *proxy.Pool) {
	s.proxies = p
}

// ScanBatch processes scan requests concurrently and streams one ScanResult
// per request. The channel is closed when every request has been handled or
// the context is cancelled.
func (s *Scanner) ScanBatch(ctx context.Context, requests []models.RequestOptions) <-chan models.ScanResult {
	results := make(chan models.ScanResult, len(requests))

	domainGroups := GroupByDomain(requests)

	var wg sync.WaitGroup

	go func() {
		sem := make(chan struct{}, s.concurrency)

		for _, groupRequests := range domainGroups {
			select {
			case <-ctx.Done():
				wg.Wait()
				close(results)
				return
			default:
			}

			for _, req := range groupRequests {
				wg.Add(1)
				sem <- struct{}{}

				go func(r models.RequestOptions) {
					defer wg.Done()
					defer func() { <-sem }()

					results <- s.scanOne(ctx, r)
				}(req)
			}
		}

		wg.Wait()
		close(results)
	}()

	return results
}

func (s *Scanner) scanOne(ctx context.Context, r models.RequestOptions) models.ScanResult {
	reqCtx := reqctx.WithRequestContext(ctx)

	assigned := r.Proxy
	if assigned == "" && s.proxies != nil {
		assigned = s.proxies.GetNext()
		r.Proxy = assigned
	}

	data, err := s.fetcher.Fetch(r)
	if err != nil {
		if assigned != "" && s.proxies != nil {
			s.proxies.MarkFailed(assigned)
		}
		wrapped := reqctx.NewRequestError(reqCtx, err)
		return models.ScanResult{URL: r.URL, Err: wrapped, Error: wrapped.Error()}
	}
	if assigned != "" && s.proxies != nil {
		s.proxies.MarkHealthy(assigned)
	}

	bundle, err := extract.Scan(data)
	if err != nil {
		wrapped := reqctx.NewRequestError(reqCtx, err)
		return models.ScanResult{URL: r.URL, Err: wrapped, Error: wrapped.Error()}
	}

	return models.ScanResult{URL: r.URL, Bundle: bundle}
}
