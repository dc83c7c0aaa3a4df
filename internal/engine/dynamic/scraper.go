// internal/engine/dynamic/scraper.go
package dynamic

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/law-makers/contactscan/internal/engine"
	"github.com/law-makers/contactscan/internal/engine/snapshot"
	"github.com/law-makers/contactscan/pkg/models"
	"github.com/rs/zerolog/log"
)

// Scraper fetches pages through headless Chrome so SPA pages (React/Vue/
// Angular shells) are rendered before their links and text are scanned for
// contacts. Rendered pages go through the same snapshot path as static ones.
type Scraper struct {
	browserPool *BrowserPool
	timeout     time.Duration
	userAgent   string
	mu          sync.Mutex
}

// New creates a new dynamic Scraper; the pool may be nil and attached later
func New(pool *BrowserPool, timeout time.Duration, ua string) *Scraper {
	return &Scraper{
		browserPool: pool,
		timeout:     timeout,
		userAgent:   ua,
	}
}

// SetBrowserPool updates the browser pool used by the scraper (thread-safe)
func (d *Scraper) SetBrowserPool(bp *BrowserPool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.browserPool = bp
}

func (d *Scraper) pool() *BrowserPool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.browserPool
}

// Name returns the name of this scraper
func (d *Scraper) Name() string {
	return "DynamicScraper"
}

// Fetch retrieves and parses a page using headless Chrome
func (d *Scraper) Fetch(opts models.RequestOptions) (*models.PageData, error) {
	start := time.Now()

	log.Debug().
		Str("url", opts.URL).
		Str("scraper", d.Name()).
		Msg("Starting fetch")

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = d.timeout
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var ctx context.Context
	var cancel context.CancelFunc

	if pool := d.pool(); pool != nil {
		bCtx, err := pool.Acquire(timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire browser from pool: %w", err)
		}
		defer pool.Release(bCtx)

		ctx, cancel = context.WithTimeout(bCtx.Ctx, timeout)
		defer cancel()

		log.Debug().Dur("elapsed", time.Since(start)).Msg("Acquired browser from pool")
	} else {
		// One-shot allocator when no pool was warmed up
		baseCtx, baseCancel := context.WithTimeout(context.Background(), timeout)
		defer baseCancel()

		allocOpts := allocatorOptions(d.userAgent, opts.Proxy, "")
		allocOpts = append(allocOpts, chromedp.Flag("headless", "new"))

		allocCtx, allocCancel := chromedp.NewExecAllocator(baseCtx, allocOpts...)
		defer allocCancel()

		ctx, cancel = chromedp.NewContext(allocCtx)
		defer cancel()

		log.Debug().Dur("elapsed", time.Since(start)).Msg("Created one-shot browser context")
	}

	pageData := &models.PageData{
		URL:       opts.URL,
		FetchedAt: time.Now(),
		Headers:   make(map[string]string),
		Metadata:  make(map[string]string),
	}

	var htmlContent string
	var statusCode int64

	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if resp.Response.URL == opts.URL {
				statusCode = resp.Response.Status
				for key, value := range resp.Response.Headers {
					if strValue, ok := value.(string); ok {
						pageData.Headers[key] = strValue
					}
				}
			}
		}
	})

	tasks := []chromedp.Action{
		network.Enable(),
		chromedp.Navigate(opts.URL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Let initial JS settle; SPA routers need a beat to paint
			time.Sleep(300 * time.Millisecond)
			if opts.WaitSeconds > 0 {
				log.Debug().Int("wait_seconds", opts.WaitSeconds).Msg("Waiting after navigation before scanning")
				time.Sleep(time.Duration(opts.WaitSeconds) * time.Second)
			}
			return nil
		}),
		chromedp.OuterHTML("html", &htmlContent, chromedp.ByQuery),
	}

	if err := chromedp.Run(ctx, tasks...); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, engine.NewScanError(engine.ErrCodeTimeout, "page render timed out", err).WithRetry()
		}
		return nil, engine.NewScanError(engine.ErrCodeBrowserCrash, "browser execution failed", err)
	}

	pageData.HTML = htmlContent
	pageData.StatusCode = int(statusCode)
	pageData.ResponseTime = time.Since(start).Milliseconds()

	// Parse the rendered DOM the same way the static path does, so the
	// extractors see identical input shapes regardless of engine
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, engine.NewScanError(engine.ErrCodeParseError, "failed to parse rendered HTML", err)
	}
	snapshot.Populate(doc, pageData)

	log.Debug().
		Str("url", opts.URL).
		Int("status", pageData.StatusCode).
		Int64("response_time_ms", pageData.ResponseTime).
		Int("links", len(pageData.Links)).
		Msg("Fetch completed")

	return pageData, nil
}
