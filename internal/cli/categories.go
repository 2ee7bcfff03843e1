package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kovka-shop/productseed/internal/catalog"
	"github.com/kovka-shop/productseed/internal/tui"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category table",
	Long: `List the built-in category table in sort order.

The folder column is the image sub-folder and the slug written to
productCategories. The transliteration column shows the slug derived from the
display name; folders that predate the transliteration rules are marked.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := tui.NewPrinter(tui.DetectMode(out))

	headers := []string{"#", "Folder", "Name", "Prefix", "Transliteration"}
	rows := categoryRows(catalog.Default(), p)

	fmt.Fprintln(out, p.Table(headers, rows))
	return nil
}

func categoryRows(table catalog.Table, p tui.Printer) [][]string {
	rows := make([][]string, 0, table.Len())
	for _, c := range table.Categories() {
		translit := catalog.Slugify(c.Name)
		if translit != c.Slug {
			translit = p.Muted(translit + " *")
		}
		rows = append(rows, []string{
			strconv.Itoa(c.SortOrder),
			c.Slug,
			c.Name,
			c.ArticlePrefix,
			translit,
		})
	}
	return rows
}
