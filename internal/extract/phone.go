package extract

import (
	"regexp"
	"strings"
)

// phonePatterns cover the common shapes numbers take on arbitrary pages.
// They deliberately overlap: the dedup set absorbs matches that normalize to
// the same digit string, and matches that normalize differently are kept as
// distinct results rather than second-guessed.
var phonePatterns = []*regexp.Regexp{
	// International with grouped digits: +44 20 7946 0958
	regexp.MustCompile(`\+\d{1,4}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{1,4}[\s.-]?\d{1,9}`),
	// US with optional parens: (555) 123-4567
	regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
	// US with explicit separators: 555-123-4567
	regexp.MustCompile(`\d{3}[\s.-]\d{3}[\s.-]\d{4}`),
	// Bare international run: +15550001111
	regexp.MustCompile(`\+\d{10,15}`),
}

// minPhoneDigits is the minimum normalized length for a candidate to count
// as a phone number; anything shorter is regex noise (dates, prices, ids).
const minPhoneDigits = 10

// NormalizePhone reduces a raw candidate to its canonical stored form:
// digits plus an optional leading +. A + that is not the first character
// means the candidate was never a real international prefix, so all + signs
// are stripped. Returns "" when the result is too short to be a number.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.Contains(cleaned, "+") && !strings.HasPrefix(cleaned, "+") {
		cleaned = strings.ReplaceAll(cleaned, "+", "")
	}
	if len(cleaned) < minPhoneDigits {
		return ""
	}
	return cleaned
}

// ExtractPhones finds phone numbers in the page's links and visible text.
// tel: links are the primary source; the text sweep runs every pattern
// independently. Deduplicated by normalized form in first-seen order.
func ExtractPhones(links []string, text string) []string {
	var out []string
	seen := make(map[string]struct{})

	add := func(candidate string) {
		phone := NormalizePhone(candidate)
		if phone == "" {
			return
		}
		if _, ok := seen[phone]; ok {
			return
		}
		seen[phone] = struct{}{}
		out = append(out, phone)
	}

	for _, href := range links {
		if len(href) < 4 || !strings.EqualFold(href[:4], "tel:") {
			continue
		}
		add(href[4:])
	}

	for _, re := range phonePatterns {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}

	return out
}
