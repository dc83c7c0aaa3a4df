// internal/engine/hybrid/scraper.go
package hybrid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dop251/goja"
	"github.com/law-makers/contactscan/internal/engine/static"
	"github.com/law-makers/contactscan/pkg/models"
	"github.com/rs/zerolog/log"
)

// Scraper combines the static fetch with a lightweight inline-JS pass.
// Pages frequently carry contact data only inside script blobs (JSON-LD,
// window.__INITIAL_STATE__ and similar); executing inline scripts in a
// sandboxed VM and folding the resulting string globals into the scannable
// text lets the extractors see those contacts without a full browser.
type Scraper struct {
	static *static.Scraper
}

// New creates a new hybrid Scraper on top of the static one
func New(staticScraper *static.Scraper) *Scraper {
	return &Scraper{static: staticScraper}
}

// Name returns the name of the scraper
func (s *Scraper) Name() string {
	return "HybridScraper"
}

// Fetch retrieves the page statically and then runs the inline-JS pass
func (s *Scraper) Fetch(opts models.RequestOptions) (*models.PageData, error) {
	data, doc, err := s.static.FetchWithDoc(opts)
	if err != nil {
		return nil, err
	}

	if doc != nil && strings.Contains(data.HTML, "<script") {
		// The static fetch may have returned the cache's own object; the
		// harvest writes to a private copy so concurrent and repeated scans
		// of the same URL never see each other's folded-in globals.
		data = clonePage(data)
		s.executeInlineScripts(data, doc)
	}

	return data, nil
}

// clonePage makes a copy of a page snapshot that is safe to mutate: the
// struct is copied and the Metadata map is rebuilt. Fields the inline-JS
// pass never writes (Headers, Links) stay shared.
func clonePage(data *models.PageData) *models.PageData {
	clone := *data
	clone.Metadata = make(map[string]string, len(data.Metadata))
	for k, v := range data.Metadata {
		clone.Metadata[k] = v
	}
	return &clone
}

func (s *Scraper) executeInlineScripts(data *models.PageData, doc *goquery.Document) {
	vm := goja.New()

	// Minimal mock browser environment, just enough for data-assignment
	// scripts to run without throwing immediately
	vm.Set("window", vm.GlobalObject())
	vm.Set("self", vm.GlobalObject())
	vm.Set("document", map[string]interface{}{
		"location": map[string]interface{}{
			"href": data.URL,
		},
	})
	vm.Set("location", map[string]interface{}{
		"href": data.URL,
	})
	vm.Set("console", map[string]interface{}{
		"log":   func(call goja.FunctionCall) goja.Value { return nil },
		"error": func(call goja.FunctionCall) goja.Value { return nil },
	})

	executed := 0
	doc.Find("script").Each(func(i int, sel *goquery.Selection) {
		if _, external := sel.Attr("src"); external {
			return
		}
		script := sel.Text()
		if script == "" {
			return
		}
		// Most page scripts fail against the mock DOM; that is fine, we
		// only care about the globals the ones that run leave behind
		if _, err := vm.RunString(script); err == nil {
			executed++
		}
	})

	if executed == 0 {
		return
	}

	keys := vm.GlobalObject().Keys()
	sort.Strings(keys)

	var harvested []string
	for _, key := range keys {
		if isStandardGlobal(key) {
			continue
		}
		val := vm.Get(key)
		if val == nil {
			continue
		}
		exported := val.Export()
		if exported == nil {
			continue
		}
		text := flattenValue(exported)
		if text == "" {
			continue
		}
		data.Metadata["js:"+key] = text
		harvested = append(harvested, text)
	}

	if len(harvested) > 0 {
		// Fold JS-carried strings into the text the extractors sweep
		data.Text = data.Text + "\n" + strings.Join(harvested, "\n")
		log.Debug().
			Str("url", data.URL).
			Int("globals", len(harvested)).
			Msg("Inline script globals folded into scan text")
	}
}

// flattenValue renders an exported JS value as text so regex extractors can
// sweep it. Nested maps and slices are walked; functions and empty
// containers render as nothing.
func flattenValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]interface{}:
		var parts []string
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s := flattenValue(val[k]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case []interface{}:
		var parts []string
		for _, item := range val {
			if s := flattenValue(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case float64, int64, bool:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}

// isStandardGlobal filters the VM's own globals from harvested page data
func isStandardGlobal(key string) bool {
	switch key {
	case "window", "self", "document", "location", "console",
		"undefined", "NaN", "Infinity", "globalThis":
		return true
	}
	return false
}
