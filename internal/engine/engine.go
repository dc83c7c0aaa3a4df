package engine

import "github.com/law-makers/contactscan/pkg/models"

// Scraper is the interface all page-fetching engines implement. The fetched
// PageData carries everything the contact extractors need: link hrefs and
// the page's visible text.
type Scraper interface {
	// Fetch retrieves and parses the page at the given URL
	Fetch(opts models.RequestOptions) (*models.PageData, error)

	// Name returns the name of the scraper implementation
	Name() string
}
