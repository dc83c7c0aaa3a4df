package extract

import (
	"reflect"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a.b@example.com", true},
		{"user+tag@sub.domain.co", true},
		{"first_last%x@host-name.org", true},
		{"a..b@example.com", false},
		{"a.b@example..com", false},
		{"no-at-sign.example.com", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.valid {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.valid)
			}
		})
	}
}

func TestExtractEmails_MailtoLinks(t *testing.T) {
	links := []string{
		"mailto:Sales@Example.com",
		"MAILTO:support@example.com?subject=Hello&body=Hi",
		"mailto: spaced@example.com ",
		"mailto:broken..address@example.com",
		"/contact",
		"https://example.com/about",
	}

	got := ExtractEmails(links, "")
	want := []string{"sales@example.com", "support@example.com", "spaced@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractEmails = %v, want %v", got, want)
	}
}

func TestExtractEmails_TextScan(t *testing.T) {
	text := `Reach us at info@acme.io or billing@acme.io.
Not an address: foo@bar, double..dot@acme.io`

	got := ExtractEmails(nil, text)
	want := []string{"info@acme.io", "billing@acme.io"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractEmails = %v, want %v", got, want)
	}
}

func TestExtractEmails_DedupAcrossSources(t *testing.T) {
	// The same address via a mailto: link and in page text, differing only
	// in case, must yield a single lowercase entry.
	links := []string{"mailto:Foo@Example.com"}
	text := "Contact foo@example.com for details."

	got := ExtractEmails(links, text)

	if len(got) != 1 {
		t.Fatalf("expected 1 email, got %d: %v", len(got), got)
	}
	if got[0] != "foo@example.com" {
		t.Errorf("expected foo@example.com, got %q", got[0])
	}
}

func TestExtractEmails_Empty(t *testing.T) {
	if got := ExtractEmails(nil, "nothing to see here"); len(got) != 0 {
		t.Errorf("expected no emails, got %v", got)
	}
}
