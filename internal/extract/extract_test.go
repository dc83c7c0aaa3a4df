package extract

import (
	"reflect"
	"testing"

	"github.com/law-makers/contactscan/pkg/models"
)

func testPage() *models.PageData {
	return &models.PageData{
		URL:   "https://acme.example.com/contact",
		Title: "Contact Us",
		Links: []string{
			"mailto:test@site.com",
			"tel:+1-555-000-1111",
			"https://github.com/someuser",
			"/about",
		},
		Text: "Reach out any time.",
	}
}

func TestScan_EndToEnd(t *testing.T) {
	bundle, err := Scan(testPage())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if !reflect.DeepEqual(bundle.Emails, []string{"test@site.com"}) {
		t.Errorf("emails = %v, want [test@site.com]", bundle.Emails)
	}
	if !reflect.DeepEqual(bundle.Phones, []string{"+15550001111"}) {
		t.Errorf("phones = %v, want [+15550001111]", bundle.Phones)
	}
	if len(bundle.Socials) != 1 {
		t.Fatalf("socials = %v, want 1 record", bundle.Socials)
	}
	social := bundle.Socials[0]
	if social.URL != "https://github.com/someuser" || social.Platform != "GitHub" || social.Icon != "🐙" {
		t.Errorf("unexpected social record %+v", social)
	}

	if bundle.PageURL != "https://acme.example.com/contact" {
		t.Errorf("page URL = %q", bundle.PageURL)
	}
	if bundle.PageTitle != "Contact Us" {
		t.Errorf("page title = %q", bundle.PageTitle)
	}
	if bundle.ScannedAt.IsZero() {
		t.Error("scan timestamp not set")
	}
}

func TestScan_IdempotentOverSameSnapshot(t *testing.T) {
	first, err := Scan(testPage())
	if err != nil {
		t.Fatalf("first Scan failed: %v", err)
	}
	second, err := Scan(testPage())
	if err != nil {
		t.Fatalf("second Scan failed: %v", err)
	}

	// Timestamps differ between runs; everything extracted must not.
	if !reflect.DeepEqual(first.Emails, second.Emails) {
		t.Errorf("emails differ: %v vs %v", first.Emails, second.Emails)
	}
	if !reflect.DeepEqual(first.Phones, second.Phones) {
		t.Errorf("phones differ: %v vs %v", first.Phones, second.Phones)
	}
	if !reflect.DeepEqual(first.Socials, second.Socials) {
		t.Errorf("socials differ: %v vs %v", first.Socials, second.Socials)
	}
}

func TestScan_EmptyPage(t *testing.T) {
	bundle, err := Scan(&models.PageData{URL: "https://empty.example.com/"})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(bundle.Emails) != 0 || len(bundle.Phones) != 0 || len(bundle.Socials) != 0 {
		t.Errorf("expected empty bundle, got %+v", bundle)
	}
}

func TestScan_NilPage(t *testing.T) {
	if _, err := Scan(nil); err == nil {
		t.Error("expected error for nil page")
	}
}
