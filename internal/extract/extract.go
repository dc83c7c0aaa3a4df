// Package extract implements the contact extraction core: three independent
// extractors (emails, phone numbers, social-profile links) that run as pure
// functions over a fetched page's link hrefs and visible text.
//
// None of the extractors depend on another's output and none of them touch
// the network; everything they need arrives in the models.PageData the
// engine produced. That keeps them unit-testable without any page fetch.
package extract

import (
	"fmt"
	"time"

	"github.com/law-makers/contactscan/pkg/models"
	"github.com/rs/zerolog/log"
)

// Scan runs all three extractors over the page and assembles the result
// bundle with the page's URL, title, and a scan timestamp.
//
// The extractors are total functions over well-formed input, so per-item
// problems (bad hrefs, invalid candidates) are filtered silently inside
// them. Anything unexpected enough to panic is converted into an error here
// rather than crashing the caller; this is the single failure boundary for
// a scan.
func Scan(page *models.PageData) (bundle *models.ContactBundle, err error) {
	if page == nil {
		return nil, fmt.Errorf("no page data to scan")
	}

	defer func() {
		if r := recover(); r != nil {
			bundle = nil
			err = fmt.Errorf("extraction failed: %v", r)
		}
	}()

	emails := ExtractEmails(page.Links, page.Text)
	phones := ExtractPhones(page.Links, page.Text)
	socials := ExtractSocialLinks(page.Links, page.URL)

	log.Debug().
		Str("url", page.URL).
		Int("emails", len(emails)).
		Int("phones", len(phones)).
		Int("socials", len(socials)).
		Msg("Extraction completed")

	return &models.ContactBundle{
		Emails:    emails,
		Phones:    phones,
		Socials:   socials,
		PageURL:   page.URL,
		PageTitle: page.Title,
		ScannedAt: time.Now(),
	}, nil
}
