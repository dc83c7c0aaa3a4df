package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/law-makers/contactscan/pkg/models"
)

// SaveText writes a plain-text contact report, one value per line under
// labelled headings.
func SaveText(bundle *models.ContactBundle, filepath string) error {
	return os.WriteFile(filepath, []byte(FormatText(bundle)), 0644)
}

// FormatText renders a bundle in the same shape the terminal panel uses,
// minus colors, so piped and saved output stay grep-friendly.
func FormatText(bundle *models.ContactBundle) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Contact report for %s\n", bundle.PageURL)
	if bundle.PageTitle != "" {
		fmt.Fprintf(&sb, "Page title: %s\n", bundle.PageTitle)
	}
	fmt.Fprintf(&sb, "Scanned: %s\n\n", bundle.ScannedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&sb, "Emails (%d)\n", len(bundle.Emails))
	if len(bundle.Emails) == 0 {
		sb.WriteString("  No emails found\n")
	}
	for _, email := range bundle.Emails {
		fmt.Fprintf(&sb, "  %s\n", email)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Phone numbers (%d)\n", len(bundle.Phones))
	if len(bundle.Phones) == 0 {
		sb.WriteString("  No phone numbers found\n")
	}
	for _, phone := range bundle.Phones {
		fmt.Fprintf(&sb, "  %s\n", phone)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Social profiles (%d)\n", len(bundle.Socials))
	if len(bundle.Socials) == 0 {
		sb.WriteString("  No social links found\n")
	}
	for _, social := range bundle.Socials {
		fmt.Fprintf(&sb, "  %s %s: %s\n", social.Icon, social.Platform, social.URL)
	}

	return sb.String()
}
