package extract

import (
	"regexp"
	"strings"
)

var (
	// Loose pattern for scanning free text. Candidates still go through
	// IsValidEmail before they are kept.
	emailScanRE = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Anchored pattern used for validation.
	emailValidRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsValidEmail reports whether s is an acceptable email address.
// Consecutive dots pass the character-class pattern but are not deliverable,
// so they are rejected explicitly.
func IsValidEmail(s string) bool {
	return emailValidRE.MatchString(s) && !strings.Contains(s, "..")
}

// ExtractEmails finds email addresses in the page's links and visible text.
//
// mailto: links are the primary source since they are explicit contact
// affordances; a regex sweep over the text catches addresses that are only
// written out. Results are normalized to lowercase and deduplicated in
// first-seen order.
func ExtractEmails(links []string, text string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(candidate string) {
		email := strings.ToLower(strings.TrimSpace(candidate))
		if !IsValidEmail(email) {
			return
		}
		if _, ok := seen[email]; ok {
			return
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}

	for _, href := range links {
		if len(href) < 7 || !strings.EqualFold(href[:7], "mailto:") {
			continue
		}
		addr := href[7:]
		// Drop ?subject=... and friends
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		add(addr)
	}

	for _, m := range emailScanRE.FindAllString(text, -1) {
		add(m)
	}

	return out
}
