package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kovka-shop/productseed/internal/catalog"
)

// completeCategorySlugs provides shell completion for category slugs not yet
// given on the command line.
func completeCategorySlugs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, slug := range catalog.Default().Slugs() {
		if slices.Contains(args, slug) {
			continue
		}
		if strings.HasPrefix(slug, toComplete) {
			matches = append(matches, slug)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
