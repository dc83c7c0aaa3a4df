package extract

import (
	"testing"
)

const testPageURL = "https://acme.example.com/contact"

func TestIsValidSocialLink(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"https://www.facebook.com/somebrand", true},
		{"https://github.com/someuser", true},
		{"https://facebook.com/", false},
		{"https://facebook.com", false},
		{"https://facebook.com/sharer/sharer.php?u=https://acme.example.com", false},
		{"https://twitter.com/intent/tweet?text=hi", false},
		{"https://linkedin.com/login", false},
		{"https://instagram.com/explore", false},
		{"https://youtube.com/about", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsValidSocialLink(tt.url); got != tt.valid {
				t.Errorf("IsValidSocialLink(%q) = %v, want %v", tt.url, got, tt.valid)
			}
		})
	}
}

func TestExtractSocialLinks_PlatformMatching(t *testing.T) {
	links := []string{
		"https://www.facebook.com/somebrand",
		"https://linkedin.com/company/acme",
		"https://github.com/someuser",
		"https://example.com/not-social",
		"mailto:info@acme.example.com",
	}

	got := ExtractSocialLinks(links, testPageURL)

	if len(got) != 3 {
		t.Fatalf("expected 3 social links, got %d: %v", len(got), got)
	}

	if got[0].Platform != "Facebook" {
		t.Errorf("expected Facebook first, got %q", got[0].Platform)
	}
	if got[1].Platform != "LinkedIn" {
		t.Errorf("expected LinkedIn second, got %q", got[1].Platform)
	}
	if got[2].Platform != "GitHub" || got[2].Icon != "🐙" {
		t.Errorf("expected GitHub with octopus icon, got %+v", got[2])
	}
}

func TestExtractSocialLinks_Dedup(t *testing.T) {
	// Two anchors pointing at the same resolved URL produce one record.
	links := []string{
		"https://github.com/someuser",
		"https://github.com/someuser",
	}

	got := ExtractSocialLinks(links, testPageURL)

	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d: %v", len(got), got)
	}
	if got[0].URL != "https://github.com/someuser" {
		t.Errorf("unexpected URL %q", got[0].URL)
	}
}

func TestExtractSocialLinks_SkipsMalformedHrefs(t *testing.T) {
	links := []string{
		"https://github.com/%zz", // bad escape, does not parse
		"https://github.com/gooduser",
	}

	got := ExtractSocialLinks(links, testPageURL)

	if len(got) != 1 || got[0].URL != "https://github.com/gooduser" {
		t.Errorf("expected only the well-formed link, got %v", got)
	}
}

func TestExtractSocialLinks_FirstPlatformWins(t *testing.T) {
	// twitter.com sits before x.com in the table; a twitter.com host must
	// report as Twitter even though "x.com" never matches it anyway, and an
	// x.com host must not be claimed by an earlier platform.
	links := []string{
		"https://twitter.com/someuser",
		"https://x.com/otheruser",
	}

	got := ExtractSocialLinks(links, testPageURL)

	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %v", len(got), got)
	}
	if got[0].Platform != "Twitter" {
		t.Errorf("expected Twitter, got %q", got[0].Platform)
	}
	if got[1].Platform != "X" {
		t.Errorf("expected X, got %q", got[1].Platform)
	}
}

func TestExtractSocialLinks_SubdomainSuffixMatch(t *testing.T) {
	links := []string{"https://de-de.facebook.com/somebrand"}

	got := ExtractSocialLinks(links, testPageURL)

	if len(got) != 1 || got[0].Platform != "Facebook" {
		t.Errorf("expected Facebook via subdomain, got %v", got)
	}
}

func TestExtractSocialLinks_NoOriginForRelative(t *testing.T) {
	// Relative hrefs resolve against the page origin. They end up on the
	// page's own host, which is not a social platform, so none survive.
	links := []string{"/profile/me", "about"}

	got := ExtractSocialLinks(links, testPageURL)

	if len(got) != 0 {
		t.Errorf("expected no records for on-site relative links, got %v", got)
	}
}
