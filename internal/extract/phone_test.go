package extract

import (
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"us with parens", "(555) 123-4567", "5551234567"},
		{"us with separators", "555-123-4567", "5551234567"},
		{"dots", "555.123.4567", "5551234567"},
		{"international", "+1-555-000-1111", "+15550001111"},
		{"too short", "123456789", ""},
		{"nine digits with noise", "(123) 45-678", ""},
		{"plus not leading is stripped", "1+555+1234567", "15551234567"},
		{"leading plus kept", "+15551234567", "+15551234567"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.raw); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractPhones_TelLinks(t *testing.T) {
	links := []string{
		"tel:+1-555-000-1111",
		"TEL:5551234567",
		"tel:12345", // too short, dropped
		"mailto:foo@example.com",
	}

	got := ExtractPhones(links, "")

	if len(got) != 2 {
		t.Fatalf("expected 2 phones, got %d: %v", len(got), got)
	}
	if got[0] != "+15550001111" {
		t.Errorf("expected +15550001111 first, got %q", got[0])
	}
	if got[1] != "5551234567" {
		t.Errorf("expected 5551234567 second, got %q", got[1])
	}
}

func TestExtractPhones_TextPatterns(t *testing.T) {
	text := `Call us: (555) 123-4567
International: +44 20 7946 0958
Short code 12345 should not match as a phone.`

	got := ExtractPhones(nil, text)

	want := map[string]bool{
		"5551234567":    false,
		"+442079460958": false,
	}
	for _, p := range got {
		if _, ok := want[p]; ok {
			want[p] = true
		}
	}
	for p, found := range want {
		if !found {
			t.Errorf("expected %q in results, got %v", p, got)
		}
	}
}

func TestExtractPhones_DedupAcrossPatterns(t *testing.T) {
	// Several patterns match the same visual number; the normalized set
	// must contain it once.
	text := "Phone: 555-123-4567"

	got := ExtractPhones(nil, text)

	count := 0
	for _, p := range got {
		if p == "5551234567" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one 5551234567, got %d in %v", count, got)
	}
}

func TestExtractPhones_Empty(t *testing.T) {
	if got := ExtractPhones(nil, "no numbers here"); len(got) != 0 {
		t.Errorf("expected no phones, got %v", got)
	}
}
