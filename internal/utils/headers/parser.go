package headers

import (
	"strings"
)

// Parse converts "Key: Value" strings from repeated -H flags into a header
// map. Entries without a colon are dropped.
func Parse(raw []string) map[string]string {
	m := make(map[string]string, len(raw))
	for _, hdr := range raw {
		key, value, found := strings.Cut(hdr, ":")
		if !found {
			continue
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}
