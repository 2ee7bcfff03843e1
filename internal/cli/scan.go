package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kovka-shop/productseed/internal/catalog"
	"github.com/kovka-shop/productseed/internal/logging"
	"github.com/kovka-shop/productseed/internal/tui"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

var scanCmd = &cobra.Command{
	Use:   "scan [slug...]",
	Short: "Scan the image tree and report per-category counts",
	Long: `Scan the image tree without writing any SQL.

For every category folder the report shows how many image files were
accepted and how many distinct articles they produced. Articles that do not
start with the folder's usual prefix are listed below the table.

Examples:
  productseed scan                 # every category
  productseed scan shary piki      # only these folders`,
	ValidArgsFunction: completeCategorySlugs,
	RunE:              runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	table := catalog.Default()
	if len(args) > 0 {
		subset, err := table.Subset(args)
		if err != nil {
			return fmt.Errorf("%w: %w", productseed.ErrInvalidConfig, err)
		}
		table = subset
	}

	cfg, err := resolveGenerateConfig(cmd, rootFlags{
		imagesDir:  flags.imagesDir,
		configPath: flags.configPath,
		dryRun:     true,
	}, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), cmd.ErrOrStderr(), verbose)
	result, err := newGenerator(table, logger).Scan(cfg)
	if err != nil {
		return err
	}

	printScanReport(cmd.OutOrStdout(), table, result)
	return nil
}

func printScanReport(w io.Writer, table catalog.Table, result *productseed.Catalog) {
	p := tui.NewPrinter(tui.DetectMode(w))

	missing := make(map[string]bool, len(result.MissingFolders))
	for _, slug := range result.MissingFolders {
		missing[slug] = true
	}

	headers := []string{"Folder", "Images", "Products", "Status"}
	var rows [][]string
	var mismatches []string
	for _, c := range table.Categories() {
		products := result.ProductsInFolder(c.Slug)
		status := p.Success("ok")
		switch {
		case missing[c.Slug]:
			status = p.Warning("missing")
		case result.FolderCounts[c.Slug] == 0:
			status = p.Muted("empty")
		}
		rows = append(rows, []string{
			c.Slug,
			strconv.Itoa(result.FolderCounts[c.Slug]),
			strconv.Itoa(len(products)),
			status,
		})

		for _, prod := range products {
			if c.ArticlePrefix != "" && !strings.HasPrefix(prod.Article, c.ArticlePrefix) {
				mismatches = append(mismatches, fmt.Sprintf("%s/%s (expected prefix %s)", c.Slug, prod.Article, c.ArticlePrefix))
			}
		}
	}

	fmt.Fprintln(w, p.Table(headers, rows))
	fmt.Fprintf(w, "%d products\n", result.Len())

	if len(mismatches) > 0 {
		fmt.Fprintln(w, p.Warning(fmt.Sprintf("%d article(s) without the folder prefix:", len(mismatches))))
		for _, m := range mismatches {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}
