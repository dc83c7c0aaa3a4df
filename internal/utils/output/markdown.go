package output

import (
	"fmt"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	urlutil "github.com/law-makers/contactscan/internal/utils/url"
	"github.com/law-makers/contactscan/pkg/models"
)

// SaveMarkdown writes a contact report. When pageHTML is non-empty the
// cleaned page content is converted to Markdown and appended as an excerpt.
func SaveMarkdown(bundle *models.ContactBundle, pageHTML string, filepath string) error {
	var sb strings.Builder

	title := bundle.PageTitle
	if title == "" {
		title = bundle.PageURL
	}
	fmt.Fprintf(&sb, "# Contact report: %s\n\n", title)
	fmt.Fprintf(&sb, "Source: <%s>\n\n", bundle.PageURL)
	fmt.Fprintf(&sb, "Scanned: %s\n\n", bundle.ScannedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&sb, "## Emails (%d)\n\n", len(bundle.Emails))
	if len(bundle.Emails) == 0 {
		sb.WriteString("No emails found.\n\n")
	} else {
		for _, email := range bundle.Emails {
			fmt.Fprintf(&sb, "- <%s>\n", email)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## Phone numbers (%d)\n\n", len(bundle.Phones))
	if len(bundle.Phones) == 0 {
		sb.WriteString("No phone numbers found.\n\n")
	} else {
		for _, phone := range bundle.Phones {
			fmt.Fprintf(&sb, "- %s\n", phone)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "## Social profiles (%d)\n\n", len(bundle.Socials))
	if len(bundle.Socials) == 0 {
		sb.WriteString("No social links found.\n\n")
	} else {
		for _, social := range bundle.Socials {
			fmt.Fprintf(&sb, "- %s %s: <%s>\n", social.Icon, social.Platform, social.URL)
		}
		sb.WriteString("\n")
	}

	if pageHTML != "" {
		excerpt, err := contentExcerpt(bundle.PageURL, pageHTML)
		if err != nil {
			return err
		}
		sb.WriteString("## Page content\n\n")
		sb.WriteString(excerpt)
		sb.WriteString("\n")
	}

	return os.WriteFile(filepath, []byte(sb.String()), 0644)
}

func contentExcerpt(pageURL, pageHTML string) (string, error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	// Resolve relative links against the page URL during conversion
	converter.AddRules(md.Rule{
		Filter: []string{"a"},
		Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
			href, exists := selec.Attr("href")
			if !exists {
				return nil
			}

			resolved := urlutil.ResolveURL(pageURL, href)
			title, hasTitle := selec.Attr("title")
			var titlePart string
			if hasTitle {
				titlePart = fmt.Sprintf(" %q", title)
			}
			str := fmt.Sprintf("[%s](%s)%s", selec.Text(), resolved, titlePart)
			return &str
		},
	})

	cleaned, err := CleanHTML(pageHTML)
	if err != nil {
		return "", err
	}

	return converter.ConvertString(cleaned)
}
