package extract

import (
	"net/url"
	"strings"

	"github.com/law-makers/contactscan/pkg/models"
)

// ExtractSocialLinks scans every hyperlink target on the page for links into
// known social platforms and returns the validated profile links.
//
// Relative hrefs resolve against the page's own origin; hrefs that do not
// parse are skipped silently. Records are keyed by the resolved URL string,
// so a URL that appears in several anchors yields exactly one record (a later
// sighting replaces the record in place without changing its position).
func ExtractSocialLinks(links []string, pageURL string) []models.SocialLink {
	origin := pageOrigin(pageURL)

	index := make(map[string]int)
	var records []models.SocialLink

	for _, href := range links {
		resolved, ok := resolveHref(origin, href)
		if !ok {
			continue
		}

		hostname := strings.ToLower(resolved.Hostname())
		fullURL := resolved.String()

		platform, matched := matchPlatform(hostname)
		if !matched {
			continue
		}
		if !IsValidSocialLink(fullURL) {
			continue
		}

		rec := models.SocialLink{
			URL:      fullURL,
			Platform: platform.Name,
			Icon:     platform.Icon,
		}
		if i, exists := index[fullURL]; exists {
			records[i] = rec
			continue
		}
		index[fullURL] = len(records)
		records = append(records, rec)
	}

	return records
}

// IsValidSocialLink reports whether a matched platform URL points at an
// actual profile or page, rather than a share widget, auth flow, or the
// platform's own navigation.
func IsValidSocialLink(fullURL string) bool {
	lowered := strings.ToLower(fullURL)
	for _, kw := range excludedKeywords {
		if strings.Contains(lowered, kw) {
			return false
		}
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return false
	}

	// Bare homepage links carry no profile information
	if parsed.Path == "" || parsed.Path == "/" {
		return false
	}

	segments := splitPathSegments(parsed.Path)
	if len(segments) == 0 {
		return false
	}

	first := strings.ToLower(segments[0])
	for _, generic := range genericPaths {
		if first == generic {
			return false
		}
	}

	return true
}

// matchPlatform tests a lowercased hostname against the platform table in
// order; the first domain that is a substring or suffix of the hostname wins.
func matchPlatform(hostname string) (Platform, bool) {
	for _, p := range Platforms {
		if strings.Contains(hostname, p.Domain) || strings.HasSuffix(hostname, p.Domain) {
			return p, true
		}
	}
	return Platform{}, false
}

// pageOrigin reduces the page URL to its scheme://host origin for resolving
// relative hrefs. Returns nil when the page URL itself does not parse.
func pageOrigin(pageURL string) *url.URL {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host}
}

func resolveHref(origin *url.URL, href string) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return nil, false
	}
	u, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	if u.IsAbs() {
		return u, true
	}
	if origin == nil {
		return nil, false
	}
	return origin.ResolveReference(u), true
}

func splitPathSegments(path string) []string {
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
