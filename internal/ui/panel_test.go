package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/law-makers/contactscan/pkg/models"
)

func TestRenderPanel(t *testing.T) {
	bundle := &models.ContactBundle{
		Emails: []string{"info@example.com"},
		Phones: []string{"5551234567"},
		Socials: []models.SocialLink{
			{URL: "https://linkedin.com/company/example", Platform: "LinkedIn", Icon: "💼"},
		},
		PageURL:   "https://example.com",
		PageTitle: "Example",
		ScannedAt: time.Now(),
	}

	var buf bytes.Buffer
	RenderPanel(&buf, bundle)
	out := buf.String()

	for _, want := range []string{
		"Example",
		"Emails (1)",
		"info@example.com",
		"Phone numbers (1)",
		"5551234567",
		"Social profiles (1)",
		"LinkedIn",
		"https://linkedin.com/company/example",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Panel output missing %q", want)
		}
	}
}

func TestRenderPanelEmptyStates(t *testing.T) {
	bundle := &models.ContactBundle{PageURL: "https://example.com"}

	var buf bytes.Buffer
	RenderPanel(&buf, bundle)
	out := buf.String()

	for _, want := range []string{"No emails found", "No phone numbers found", "No social links found"} {
		if !strings.Contains(out, want) {
			t.Errorf("Panel output missing empty state %q", want)
		}
	}
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	RenderError(&buf, "https://example.com", errors.New("connection refused"))
	out := buf.String()

	if !strings.Contains(out, "Scan failed") || !strings.Contains(out, "connection refused") {
		t.Errorf("Error banner incomplete: %q", out)
	}
}
