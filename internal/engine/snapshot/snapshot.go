// Package snapshot turns a parsed HTML document into the flat page snapshot
// the contact extractors work on: title, meta tags, every hyperlink target,
// and the page's visible text.
package snapshot

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/law-makers/contactscan/pkg/models"
)

// Populate fills pageData's extractor-facing fields from a goquery document.
// Link hrefs are collected raw (mailto: and tel: schemes included), matching
// what the extractors expect; resolution of relative targets happens inside
// the social extractor against the page origin.
func Populate(doc *goquery.Document, pageData *models.PageData) {
	if doc == nil || pageData == nil {
		return
	}

	pageData.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("meta").Each(func(i int, sel *goquery.Selection) {
		if name, exists := sel.Attr("name"); exists {
			content, _ := sel.Attr("content")
			pageData.Metadata[name] = content
		}
		if property, exists := sel.Attr("property"); exists {
			content, _ := sel.Attr("content")
			pageData.Metadata[property] = content
		}
	})

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists && href != "" {
			pageData.Links = append(pageData.Links, href)
		}
	})

	pageData.Text = VisibleText(doc)
}

// VisibleText approximates the rendered text of the page body: script,
// style, and other non-rendered subtrees are dropped before the text nodes
// are flattened. Extractors run their regex sweeps over this string.
func VisibleText(doc *goquery.Document) string {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}

	clone := body.Clone()
	clone.Find("script, style, noscript, template, iframe").Remove()

	return strings.TrimSpace(clone.Text())
}
