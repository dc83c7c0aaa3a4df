// internal/cli/batch.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/law-makers/contactscan/internal/engine/batch"
	"github.com/law-makers/contactscan/internal/proxy"
	"github.com/law-makers/contactscan/internal/ui"
	"github.com/law-makers/contactscan/internal/utils/output"
	urlutil "github.com/law-makers/contactscan/internal/utils/url"
	"github.com/law-makers/contactscan/pkg/models"
)

var (
	batchFile        string
	batchOutput      string
	batchMode        string
	batchConcurrency int
	batchProxies     []string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [urls...]",
	Short: "Scan many pages concurrently",
	Long: `Scans a list of URLs, given as arguments or one per line in a file, and
collects the contacts found on each page. Requests to the same domain are
grouped so rate limits are respected.`,
	Example: `  # Scan several pages at once
  contactscan batch https://a.example https://b.example

  # Read URLs from a file, one per line
  contactscan batch --file urls.txt

  # Save all results as JSON
  contactscan batch --file urls.txt --output results.json

  # Rotate outbound requests through proxies
  contactscan batch --file urls.txt --proxies http://p1:8080 --proxies http://p2:8080`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "File with URLs to scan, one per line")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "File path to save results (.json)")
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", "static", "Engine mode for all pages: static or spa")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "Concurrent scans (0 auto-tunes)")
	batchCmd.Flags().StringArrayVar(&batchProxies, "proxies", []string{}, "Proxy URLs to rotate through")
}

func runBatch(cmd *cobra.Command, args []string) error {
	urls, err := collectURLs(args)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs to scan: pass them as arguments or with --file")
	}

	appCtx := GetAppFromCmd(cmd)
	if appCtx == nil {
		return fmt.Errorf("application not initialized")
	}

	mode, err := parseMode(batchMode)
	if err != nil {
		return err
	}
	if mode == models.ModeSPA {
		if err := appCtx.EnsureBrowserPool(cmd.Context()); err != nil {
			return fmt.Errorf("spa mode needs a browser: %w", err)
		}
	}

	requests := make([]models.RequestOptions, 0, len(urls))
	for _, u := range urls {
		if err := urlutil.ValidateScanURL(u); err != nil {
			log.Warn().Str("url", u).Err(err).Msg("Skipping URL")
			continue
		}
		requests = append(requests, models.RequestOptions{
			URL:     u,
			Mode:    mode,
			Timeout: appCtx.Config.HTTPTimeout,
		})
	}
	if len(requests) == 0 {
		return fmt.Errorf("no scannable URLs after validation")
	}

	concurrency := batchConcurrency
	if concurrency == 0 {
		concurrency = appCtx.Config.BatchConcurrency
	}

	var fetcher batch.Fetcher
	if mode == models.ModeSPA {
		fetcher = appCtx.DynamicScraper
	} else {
		fetcher = appCtx.HybridScraper
	}

	scanner := batch.New(fetcher, concurrency)
	if len(batchProxies) > 0 {
		scanner.SetProxyPool(proxy.NewPool(batchProxies))
	}

	bar := progressbar.NewOptions(len(requests),
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var results []models.ScanResult
	for res := range scanner.ScanBatch(cmd.Context(), requests) {
		_ = bar.Add(1)
		results = append(results, res)
	}
	_ = bar.Finish()

	if batchOutput != "" {
		if err := output.SaveJSONResults(results, batchOutput); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", ui.Success("✓ Results saved to"), batchOutput)
		return nil
	}

	renderBatchResults(os.Stdout, os.Stderr, results)
	return nil
}

// renderBatchResults writes panels to stdout and error banners to stderr,
// the same split the scan command uses, and returns the failure count.
func renderBatchResults(stdout, stderr io.Writer, results []models.ScanResult) int {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			ui.RenderError(stderr, res.URL, res.Err)
			continue
		}
		ui.RenderPanel(stdout, res.Bundle)
	}

	fmt.Fprintf(stdout, "%s\n", ui.Bold(fmt.Sprintf("Scanned %d pages, %d failed", len(results), failed)))
	return failed
}

func collectURLs(args []string) ([]string, error) {
	urls := append([]string{}, args...)

	if batchFile != "" {
		file, err := os.Open(batchFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open URL file: %w", err)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			urls = append(urls, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read URL file: %w", err)
		}
	}

	return urls, nil
}
