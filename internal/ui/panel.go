package ui

import (
	"fmt"
	"io"

	"github.com/law-makers/contactscan/pkg/models"
)

// RenderPanel writes a contact bundle to w as three labelled groups with
// counts. Each group prints an explicit empty-state line when nothing was
// found, so a quiet page is distinguishable from a failed scan.
func RenderPanel(w io.Writer, bundle *models.ContactBundle) {
	title := bundle.PageTitle
	if title == "" {
		title = bundle.PageURL
	}
	fmt.Fprintf(w, "\n%s\n", Heading(title))
	fmt.Fprintf(w, "%s\n\n", Dim(bundle.PageURL))

	fmt.Fprintf(w, "%s\n", Bold(fmt.Sprintf("📧 Emails (%d)", len(bundle.Emails))))
	if len(bundle.Emails) == 0 {
		fmt.Fprintf(w, "   %s\n", Dim("No emails found"))
	}
	for _, email := range bundle.Emails {
		fmt.Fprintf(w, "   %s\n", Success(email))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", Bold(fmt.Sprintf("📞 Phone numbers (%d)", len(bundle.Phones))))
	if len(bundle.Phones) == 0 {
		fmt.Fprintf(w, "   %s\n", Dim("No phone numbers found"))
	}
	for _, phone := range bundle.Phones {
		fmt.Fprintf(w, "   %s\n", Success(phone))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\n", Bold(fmt.Sprintf("🌐 Social profiles (%d)", len(bundle.Socials))))
	if len(bundle.Socials) == 0 {
		fmt.Fprintf(w, "   %s\n", Dim("No social links found"))
	}
	for _, social := range bundle.Socials {
		fmt.Fprintf(w, "   %s %s  %s\n", social.Icon, Bold(social.Platform), social.URL)
	}
	fmt.Fprintln(w)
}

// RenderError writes a one-line error banner for a failed scan
func RenderError(w io.Writer, url string, err error) {
	fmt.Fprintf(w, "\n%s %s\n", Error("✗ Scan failed:"), url)
	fmt.Fprintf(w, "  %v\n", err)
}
