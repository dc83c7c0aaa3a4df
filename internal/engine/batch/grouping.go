// internal/engine/batch/grouping.go
package batch

import (
	"net/url"

	"github.com/law-makers/contactscan/pkg/models"
)

// GroupByDomain groups scan requests by their domain so connections are
// reused and per-domain rate limits apply in order
func GroupByDomain(requests []models.RequestOptions) map[string][]models.RequestOptions {
	groups := make(map[string][]models.RequestOptions)

	for _, req := range requests {
		u, err := url.Parse(req.URL)
		if err != nil {
			groups["default"] = append(groups["default"], req)
			continue
		}

		groups[u.Host] = append(groups[u.Host], req)
	}

	return groups
}
