// internal/engine/static/scraper.go
package static

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/contactscan/internal/cache"
	"github.com/law-makers/contactscan/internal/engine"
	"github.com/law-makers/contactscan/internal/engine/snapshot"
	"github.com/law-makers/contactscan/internal/ratelimit"
	"github.com/law-makers/contactscan/internal/retry"
	"github.com/law-makers/contactscan/pkg/models"
	"github.com/rs/zerolog/log"
)

// Scraper fetches static HTML pages over plain HTTP and parses them with
// goquery. This is the fast path; SPA pages go through the dynamic scraper.
type Scraper struct {
	cache     cache.Cache
	limiter   ratelimit.RateLimiter
	client    *http.Client
	timeout   time.Duration
	userAgent string
	cacheTTL  time.Duration
}

// New creates a new static Scraper with dependency injection
func New(c cache.Cache, lim ratelimit.RateLimiter, client *http.Client, timeout time.Duration, ua string, cacheTTL time.Duration) *Scraper {
	return &Scraper{
		cache:     c,
		limiter:   lim,
		client:    client,
		timeout:   timeout,
		userAgent: ua,
		cacheTTL:  cacheTTL,
	}
}

// Name returns the name of this scraper
func (s *Scraper) Name() string {
	return "StaticScraper"
}

// Fetch retrieves and parses a static HTML page
func (s *Scraper) Fetch(opts models.RequestOptions) (*models.PageData, error) {
	start := time.Now()

	log.Debug().
		Str("url", opts.URL).
		Str("scraper", s.Name()).
		Msg("Starting fetch")

	if s.cache != nil {
		if cached, ok := s.cache.Get(opts.URL); ok {
			log.Debug().Str("url", opts.URL).Msg("Cache hit, skipping fetch")
			return cached, nil
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = s.timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, opts.URL); err != nil {
			return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
		}
	}

	client, err := s.clientFor(opts, timeout)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	err = retry.WithRetry(ctx, retry.DefaultConfig(), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("User-Agent", s.userAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		for key, value := range opts.Headers {
			req.Header.Set(key, value)
		}

		resp, err = client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch URL: %w", err)
		}
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			return &retry.StatusError{StatusCode: resp.StatusCode, URL: opts.URL}
		}
		return nil
	})
	if err != nil {
		return nil, engine.NewScanError(engine.ErrCodeNetworkError, "page could not be fetched", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, engine.NewScanError(engine.ErrCodeParseError, "failed to parse HTML", err)
	}

	pageData := &models.PageData{
		URL:          opts.URL,
		StatusCode:   resp.StatusCode,
		FetchedAt:    time.Now(),
		ResponseTime: time.Since(start).Milliseconds(),
		Headers:      make(map[string]string),
		Metadata:     make(map[string]string),
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			pageData.Headers[key] = values[0]
		}
	}

	snapshot.Populate(doc, pageData)
	if htmlStr, err := doc.Find("html").Html(); err == nil {
		pageData.HTML = htmlStr
	}

	if s.cache != nil {
		_ = s.cache.Set(opts.URL, pageData, s.cacheTTL)
	}

	log.Debug().
		Str("url", opts.URL).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", pageData.ResponseTime).
		Int("links", len(pageData.Links)).
		Msg("Fetch completed")

	return pageData, nil
}

// clientFor returns the shared HTTP client, or a request-scoped one routing
// through the proxy when the request carries one. Batch proxy rotation hands
// each request a different proxy, so the proxied transport cannot be shared.
func (s *Scraper) clientFor(opts models.RequestOptions, timeout time.Duration) (*http.Client, error) {
	if opts.Proxy == "" {
		return s.client, nil
	}

	proxyURL, err := url.Parse(opts.Proxy)
	if err != nil {
		return nil, engine.NewScanError(engine.ErrCodeValidation, fmt.Sprintf("invalid proxy URL %q", opts.Proxy), err)
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyURL(proxyURL),
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	}, nil
}

// FetchWithDoc retrieves a page and re-parses the captured HTML into a
// document for callers that need DOM access (the hybrid scraper's inline
// script pass).
func (s *Scraper) FetchWithDoc(opts models.RequestOptions) (*models.PageData, *goquery.Document, error) {
	data, err := s.Fetch(opts)
	if err != nil {
		return nil, nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(data.HTML))
	if err != nil {
		return data, nil, nil
	}
	return data, doc, nil
}
