package urlutil

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/law-makers/contactscan/internal/engine"
)

// restrictedSchemes are URL schemes a scan can never reach: browser-internal
// pages, local files, and inline data. They get a distinct error so the CLI
// can tell the user "this page cannot be scanned" instead of a fetch failure.
var restrictedSchemes = []string{
	"chrome", "chrome-extension", "edge", "about", "file", "data", "javascript", "view-source",
}

// ValidateScanURL checks that a URL is something the engine can fetch and
// scan. Restricted schemes are reported via engine.ErrRestrictedURL.
func ValidateScanURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrInvalidURL, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	for _, restricted := range restrictedSchemes {
		if scheme == restricted {
			return fmt.Errorf("%w: %s", engine.ErrRestrictedURL, scheme)
		}
	}

	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", engine.ErrInvalidURL, parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", engine.ErrInvalidURL)
	}

	return nil
}

// ResolveURL resolves a possibly-relative href against a base URL and returns a string
func ResolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(u).String()
}
