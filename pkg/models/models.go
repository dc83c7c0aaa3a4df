package models

import "time"

// PageData represents the content of a fetched web page, in the shape the
// contact extractors consume: the raw link hrefs plus the visible text.
type PageData struct {
	URL          string            `json:"url"`
	StatusCode   int               `json:"status_code"`
	Title        string            `json:"title,omitempty"`
	Text         string            `json:"text,omitempty"`
	HTML         string            `json:"html,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Links        []string          `json:"links,omitempty"`
	FetchedAt    time.Time         `json:"fetched_at"`
	ResponseTime int64             `json:"response_time_ms"`
}

// SocialLink is a validated social-profile link found on a page
type SocialLink struct {
	URL      string `json:"url"`
	Platform string `json:"platform"`
	Icon     string `json:"icon"`
}

// ContactBundle is the complete result of one page scan.
// A fresh bundle is produced per scan; bundles are never mutated after they
// are returned and carry no state between scans.
type ContactBundle struct {
	Emails    []string     `json:"emails"`
	Phones    []string     `json:"phones"`
	Socials   []SocialLink `json:"socials"`
	PageURL   string       `json:"page_url"`
	PageTitle string       `json:"page_title"`
	ScannedAt time.Time    `json:"scanned_at"`
}

// ScraperMode defines the engine mode to use
type ScraperMode string

const (
	ModeAuto   ScraperMode = "auto"
	ModeStatic ScraperMode = "static"
	ModeSPA    ScraperMode = "spa"
)

// RequestOptions contains options for fetching a page to scan
type RequestOptions struct {
	URL         string
	Mode        ScraperMode
	Headers     map[string]string
	Timeout     time.Duration
	Proxy       string
	WaitSeconds int
}

// ScanResult carries the outcome of a single page scan within a batch
type ScanResult struct {
	URL    string         `json:"url"`
	Bundle *ContactBundle `json:"bundle,omitempty"`
	Err    error          `json:"-"`
	Error  string         `json:"error,omitempty"`
}
