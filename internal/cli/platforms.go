// internal/cli/platforms.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/contactscan/internal/extract"
	"github.com/law-makers/contactscan/internal/ui"
)

// platformsCmd represents the platforms command
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the social platforms the scanner recognizes",
	Long: `Prints the social media platforms the scanner looks for, in match order.
When a link's host matches more than one platform, the first match in this
list wins.`,
	Args: cobra.NoArgs,
	RunE: runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(os.Stdout, "\n%s\n\n", ui.Heading("Recognized platforms"))

	maxLen := 0
	for _, p := range extract.Platforms {
		if len(p.Name) > maxLen {
			maxLen = len(p.Name)
		}
	}

	for _, p := range extract.Platforms {
		padding := strings.Repeat(" ", maxLen-len(p.Name)+2)
		fmt.Fprintf(os.Stdout, "  %s %s%s%s\n",
			p.Icon, ui.Bold(p.Name), padding, ui.Dim(p.Domain))
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
