// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/law-makers/contactscan/internal/cache"
	"github.com/law-makers/contactscan/internal/config"
	"github.com/law-makers/contactscan/internal/engine"
	"github.com/law-makers/contactscan/internal/engine/dynamic"
	"github.com/law-makers/contactscan/internal/engine/hybrid"
	"github.com/law-makers/contactscan/internal/engine/static"
	"github.com/law-makers/contactscan/internal/ratelimit"
	"github.com/law-makers/contactscan/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Every scraper the application wires up satisfies the engine contract.
var (
	_ engine.Scraper = (*static.Scraper)(nil)
	_ engine.Scraper = (*hybrid.Scraper)(nil)
	_ engine.Scraper = (*dynamic.Scraper)(nil)
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
// Use Close() to ensure proper resource cleanup on shutdown.
type Application struct {
	Config         *config.Config
	Logger         *zerolog.Logger
	Cache          cache.Cache
	BrowserPool    *dynamic.BrowserPool
	poolMu         sync.Mutex
	RateLimiter    ratelimit.RateLimiter
	HTTPClient     *http.Client
	StaticScraper  *static.Scraper
	HybridScraper  *hybrid.Scraper
	DynamicScraper *dynamic.Scraper
	startTime      time.Time
}

// New creates and initializes a new Application with all dependencies.
//
// It performs the following initialization steps:
//   - Configures logging based on the provided config
//   - Creates and initializes the in-memory cache
//   - Creates the rate limiter for domain-based request throttling
//   - Initializes the HTTP client with proper timeouts
//   - Creates the static, hybrid, and dynamic scrapers
//
// The browser pool is created lazily via EnsureBrowserPool, so plain static
// scans never start a browser.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Initialize logger based on config
	logLevel := zerolog.ErrorLevel // default: suppress non-verbose info logs
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	// Treat "info" as non-verbose (don't display info logs unless -v is used)
	default:
		logLevel = zerolog.ErrorLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		// JSON logs to stderr
		logWriter = os.Stderr
	} else {
		// Human-friendly console output otherwise
		logWriter = zerolog.NewConsoleWriter()
	}

	logger := log.Output(logWriter).With().Timestamp().Logger()

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	// Create cache
	memCache := cache.NewMemoryCache(cfg.CacheMaxSizeBytes)
	logger.Debug().
		Int64("max_size_bytes", cfg.CacheMaxSizeBytes).
		Msg("Memory cache initialized")

	// Create rate limiter
	rateLimiter := ratelimit.NewDomainLimiter(cfg.StaticRateLimitRPS, cfg.StaticRateLimitBurst)
	logger.Debug().
		Float64("static_rps", cfg.StaticRateLimitRPS).
		Int("static_burst", cfg.StaticRateLimitBurst).
		Msg("Rate limiter initialized")

	// Create HTTP client
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableKeepAlives:   false,
		},
	}
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Msg("HTTP client initialized")

	// Create scrapers
	staticScraper := static.New(
		memCache,
		rateLimiter,
		httpClient,
		cfg.HTTPTimeout,
		cfg.UserAgent,
		cfg.CacheTTL,
	)

	hybridScraper := hybrid.New(staticScraper)

	// The dynamic scraper starts without a pool; SPA scans attach one on demand
	dynamicScraper := dynamic.New(nil, cfg.HTTPTimeout, cfg.UserAgent)

	logger.Debug().Msg("Scrapers initialized")

	app := &Application{
		Config:         cfg,
		Logger:         &logger,
		Cache:          memCache,
		RateLimiter:    rateLimiter,
		HTTPClient:     httpClient,
		StaticScraper:  staticScraper,
		HybridScraper:  hybridScraper,
		DynamicScraper: dynamicScraper,
		startTime:      time.Now(),
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

// FetchPage retrieves a page using the requested mode. In auto mode the page
// is fetched statically first; if the result looks like an unrendered SPA
// shell it is re-fetched through headless Chrome.
func (a *Application) FetchPage(ctx context.Context, opts models.RequestOptions) (*models.PageData, error) {
	switch opts.Mode {
	case models.ModeStatic:
		return a.HybridScraper.Fetch(opts)
	case models.ModeSPA:
		if err := a.EnsureBrowserPool(ctx); err != nil {
			return nil, err
		}
		return a.DynamicScraper.Fetch(opts)
	default:
		data, err := a.HybridScraper.Fetch(opts)
		if err != nil {
			return nil, err
		}
		scriptCount := strings.Count(data.HTML, "<script")
		if !hybrid.NeedsJavaScript(data.HTML, scriptCount) {
			return data, nil
		}

		a.Logger.Debug().Str("url", opts.URL).Msg("Static result looks like a SPA shell, re-fetching with browser")
		if err := a.EnsureBrowserPool(ctx); err != nil {
			// No browser available; the static result is still usable
			a.Logger.Warn().Err(err).Msg("Browser unavailable, keeping static result")
			return data, nil
		}
		rendered, err := a.DynamicScraper.Fetch(opts)
		if err != nil {
			a.Logger.Warn().Err(err).Msg("Browser fetch failed, keeping static result")
			return data, nil
		}
		return rendered, nil
	}
}

// EnsureBrowserPool lazily creates the browser pool if it has not already been
// initialized. Callers should provide a context with an appropriate timeout.
func (a *Application) EnsureBrowserPool(ctx context.Context) error {
	if a == nil {
		return fmt.Errorf("application is nil")
	}

	a.poolMu.Lock()
	defer a.poolMu.Unlock()

	if a.BrowserPool != nil {
		return nil
	}

	logger := a.Logger
	logger.Debug().Msg("Initializing browser pool on demand")
	pool, err := dynamic.NewBrowserPool(dynamic.BrowserPoolOptions{
		Size:       a.Config.BrowserPoolSize,
		Headless:   a.Config.BrowserHeadless,
		UserAgent:  a.Config.UserAgent,
		Proxy:      a.Config.Proxy,
		ChromePath: a.Config.ChromePath,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to create browser pool on demand")
		return err
	}

	a.BrowserPool = pool
	// Attach to dynamic scraper so it can reuse contexts
	if a.DynamicScraper != nil {
		a.DynamicScraper.SetBrowserPool(pool)
	}

	logger.Info().Int("pool_size", pool.Size()).Msg("Browser pool initialized on demand")
	return nil
}

// Close gracefully shuts down the application and all its resources.
//
// Any errors during shutdown are logged but do not prevent other shutdown
// steps from running.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Info().Msg("Shutting down application")

	// Close browser pool (will interrupt any running operations)
	if a.BrowserPool != nil {
		if err := a.BrowserPool.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Error closing browser pool")
		}
	}

	// Close cache
	if a.Cache != nil {
		a.Cache.Close()
	}

	// Close HTTP client (connection pooling cleanup)
	if a.HTTPClient != nil {
		a.HTTPClient.CloseIdleConnections()
	}

	uptime := time.Since(a.startTime)
	a.Logger.Info().Dur("uptime", uptime).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
