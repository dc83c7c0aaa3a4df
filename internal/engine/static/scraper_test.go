package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/law-makers/contactscan/internal/cache"
	"github.com/law-makers/contactscan/pkg/models"
)

const contactPage = `<!DOCTYPE html>
<html>
<head>
<title> Contact Us </title>
<meta name="description" content="Get in touch">
<script>var tracking = "noise";</script>
</head>
<body>
<h1>Contact</h1>
<p>Call us at (555) 123-4567 or write to hello@example.com</p>
<a href="mailto:sales@example.com">Sales</a>
<a href="tel:+15559876543">Call</a>
<a href="https://github.com/example">GitHub</a>
<a href="/about">About</a>
</body>
</html>`

func newTestScraper(c cache.Cache) *Scraper {
	return New(c, nil, &http.Client{Timeout: 5 * time.Second}, 5*time.Second, "TestAgent/1.0", time.Minute)
}

func TestFetchParsesContactPage(t *testing.T) {
	var gotUserAgent atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent.Store(r.Header.Get("User-Agent"))
		w.Header().Set("X-Test", "yes")
		w.Write([]byte(contactPage))
	}))
	defer server.Close()

	scraper := newTestScraper(nil)
	data, err := scraper.Fetch(models.RequestOptions{URL: server.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if data.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", data.StatusCode)
	}
	if data.Title != "Contact Us" {
		t.Errorf("Expected trimmed title, got %q", data.Title)
	}
	if data.Metadata["description"] != "Get in touch" {
		t.Errorf("Meta description not captured: %v", data.Metadata)
	}
	if data.Headers["X-Test"] != "yes" {
		t.Errorf("Response header not captured: %v", data.Headers)
	}
	if ua, _ := gotUserAgent.Load().(string); ua != "TestAgent/1.0" {
		t.Errorf("Expected configured user agent, got %q", ua)
	}

	// Raw hrefs are kept untouched for the extractors
	wantLinks := []string{"mailto:sales@example.com", "tel:+15559876543", "https://github.com/example", "/about"}
	if len(data.Links) != len(wantLinks) {
		t.Fatalf("Expected %d links, got %d: %v", len(wantLinks), len(data.Links), data.Links)
	}
	for i, want := range wantLinks {
		if data.Links[i] != want {
			t.Errorf("Link %d: expected %q, got %q", i, want, data.Links[i])
		}
	}

	if !strings.Contains(data.Text, "(555) 123-4567") {
		t.Error("Visible text missing the phone number")
	}
	if strings.Contains(data.Text, "tracking") {
		t.Error("Script content leaked into visible text")
	}
}

func TestFetchUsesCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(contactPage))
	}))
	defer server.Close()

	memCache := cache.NewMemoryCache(1 << 20)
	defer memCache.Close()

	scraper := newTestScraper(memCache)

	if _, err := scraper.Fetch(models.RequestOptions{URL: server.URL}); err != nil {
		t.Fatalf("First fetch failed: %v", err)
	}
	if _, err := scraper.Fetch(models.RequestOptions{URL: server.URL}); err != nil {
		t.Fatalf("Second fetch failed: %v", err)
	}

	if hits.Load() != 1 {
		t.Errorf("Expected 1 server hit with a warm cache, got %d", hits.Load())
	}
}

func TestFetchCustomHeaders(t *testing.T) {
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	scraper := newTestScraper(nil)
	_, err := scraper.Fetch(models.RequestOptions{
		URL:     server.URL,
		Headers: map[string]string{"Authorization": "Bearer token"},
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if auth, _ := gotAuth.Load().(string); auth != "Bearer token" {
		t.Errorf("Custom header not sent, got %q", auth)
	}
}

func TestFetchRoutesThroughProxy(t *testing.T) {
	var proxied atomic.Value
	// A forward proxy receives the full target URL in the request line
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied.Store(r.URL.String())
		w.Write([]byte(contactPage))
	}))
	defer proxy.Close()

	scraper := newTestScraper(nil)
	data, err := scraper.Fetch(models.RequestOptions{
		URL:   "http://contact.test/team",
		Proxy: proxy.URL,
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if got, _ := proxied.Load().(string); got != "http://contact.test/team" {
		t.Errorf("Proxy did not receive the request, got %q", got)
	}
	if data.Title != "Contact Us" {
		t.Errorf("Proxied response not parsed, title %q", data.Title)
	}
}

func TestFetchRejectsBadProxyURL(t *testing.T) {
	scraper := newTestScraper(nil)
	_, err := scraper.Fetch(models.RequestOptions{
		URL:   "http://contact.test/",
		Proxy: "://not-a-proxy",
	})
	if err == nil {
		t.Fatal("Expected an error for an unparsable proxy URL")
	}
}

func TestFetchWithDoc(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(contactPage))
	}))
	defer server.Close()

	scraper := newTestScraper(nil)
	data, doc, err := scraper.FetchWithDoc(models.RequestOptions{URL: server.URL})
	if err != nil {
		t.Fatalf("FetchWithDoc failed: %v", err)
	}
	if doc == nil {
		t.Fatal("Expected a parsed document")
	}
	if doc.Find("script").Length() != 1 {
		t.Errorf("Expected 1 script node in re-parsed document, got %d", doc.Find("script").Length())
	}
	if data.HTML == "" {
		t.Error("Expected captured HTML")
	}
}
