// internal/cli/scan.go
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/contactscan/internal/engine"
	"github.com/law-makers/contactscan/internal/extract"
	"github.com/law-makers/contactscan/internal/ui"
	"github.com/law-makers/contactscan/internal/utils/headers"
	"github.com/law-makers/contactscan/internal/utils/output"
	urlutil "github.com/law-makers/contactscan/internal/utils/url"
	"github.com/law-makers/contactscan/pkg/models"
)

var (
	scanMode       string
	scanOutput     string
	scanHeaders    []string
	scanWait       int
	includeContent bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Scan a web page for emails, phone numbers, and social links",
	Long: `Fetches a page and extracts every contact it can find: email addresses
(mailto links and text), phone numbers (tel links and text), and social media
profile links across the major platforms.

The scanner auto-detects whether the page needs JavaScript rendering, or you
can force a specific mode using the --mode flag.`,
	Example: `  # Basic scan (auto-detects static vs SPA)
  contactscan scan https://example.com

  # Force static mode for speed
  contactscan scan https://example.com --mode=static

  # Render with headless Chrome and wait 3 extra seconds
  contactscan scan https://example.com --mode=spa --wait=3

  # Save results to a file (format by extension: .json, .csv, .md, .txt)
  contactscan scan https://example.com --output=contacts.json

  # Markdown report with the page content appended
  contactscan scan https://example.com -o report.md --include-content

  # Add custom headers
  contactscan scan https://example.com -H "Authorization: Bearer token"`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanMode, "mode", "m", "auto", "Force engine mode: auto, static, or spa")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "File path to save results (supports .json, .csv, .md, .txt)")
	scanCmd.Flags().StringArrayVarP(&scanHeaders, "header", "H", []string{}, "Custom headers (e.g., -H \"User-Agent: Bot\")")
	scanCmd.Flags().IntVar(&scanWait, "wait", 0, "Extra seconds to wait after page load in spa mode")
	scanCmd.Flags().BoolVar(&includeContent, "include-content", false, "Append the page content to Markdown reports")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]

	if err := urlutil.ValidateScanURL(url); err != nil {
		if errors.Is(err, engine.ErrRestrictedURL) {
			fmt.Fprintf(os.Stderr, "%s\n", ui.Error("This page cannot be scanned: browser-internal and local URLs are off limits."))
			return err
		}
		return err
	}

	appCtx := GetAppFromCmd(cmd)
	if appCtx == nil {
		return fmt.Errorf("application not initialized")
	}

	mode, err := parseMode(scanMode)
	if err != nil {
		return err
	}

	opts := models.RequestOptions{
		URL:         url,
		Mode:        mode,
		Headers:     headers.Parse(scanHeaders),
		Timeout:     appCtx.Config.HTTPTimeout,
		Proxy:       appCtx.Config.Proxy,
		WaitSeconds: scanWait,
	}

	log.Info().Str("url", url).Str("mode", string(mode)).Msg("Scanning page")
	pageData, err := appCtx.FetchPage(cmd.Context(), opts)
	if err != nil {
		ui.RenderError(os.Stderr, url, err)
		return err
	}

	bundle, err := extract.Scan(pageData)
	if err != nil {
		ui.RenderError(os.Stderr, url, err)
		return err
	}

	if scanOutput != "" {
		return saveBundle(bundle, pageData, scanOutput)
	}

	ui.RenderPanel(os.Stdout, bundle)
	return nil
}

func parseMode(s string) (models.ScraperMode, error) {
	switch strings.ToLower(s) {
	case "auto":
		return models.ModeAuto, nil
	case "static":
		return models.ModeStatic, nil
	case "spa":
		return models.ModeSPA, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be auto, static, or spa)", s)
	}
}

func saveBundle(bundle *models.ContactBundle, page *models.PageData, path string) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = output.SaveJSON(bundle, path)
	case ".csv":
		err = output.SaveCSV(bundle, path)
	case ".md":
		pageHTML := ""
		if includeContent {
			pageHTML = page.HTML
		}
		err = output.SaveMarkdown(bundle, pageHTML, path)
	case ".txt":
		err = output.SaveText(bundle, path)
	default:
		return fmt.Errorf("unsupported output format: %s (use .json, .csv, .md, or .txt)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%s %s\n", ui.Success("✓ Results saved to"), path)
	return nil
}
