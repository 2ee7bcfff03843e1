package sqlgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kovka-shop/productseed/pkg/productseed"
)

// Options controls the names that end up in the rendered SQL.
type Options struct {
	Charset         string
	CategoriesTable string
	ProductsTable   string
}

// DefaultOptions returns the options matching the shop schema.
func DefaultOptions() Options {
	return Options{
		Charset:         productseed.DefaultCharset,
		CategoriesTable: productseed.DefaultCategoriesTable,
		ProductsTable:   productseed.DefaultProductsTable,
	}
}

// OptionsFromConfig takes the SQL-related fields of a run configuration.
// Empty fields fall back to the defaults.
func OptionsFromConfig(cfg productseed.GenerateConfig) Options {
	opts := DefaultOptions()
	if cfg.Charset != "" {
		opts.Charset = cfg.Charset
	}
	if cfg.CategoriesTable != "" {
		opts.CategoriesTable = cfg.CategoriesTable
	}
	if cfg.ProductsTable != "" {
		opts.ProductsTable = cfg.ProductsTable
	}
	return opts
}

// Validate rejects names that cannot be written into the SQL unquoted.
func (o Options) Validate() error {
	var errs []error
	if err := ValidateCharset(o.Charset); err != nil {
		errs = append(errs, fmt.Errorf("charset: %w", err))
	}
	if err := ValidateIdentifier(o.CategoriesTable); err != nil {
		errs = append(errs, fmt.Errorf("categories table: %w", err))
	}
	if err := ValidateIdentifier(o.ProductsTable); err != nil {
		errs = append(errs, fmt.Errorf("products table: %w", err))
	}
	return errors.Join(errs...)
}

// RenderCategories renders the category block: a TRUNCATE followed by one
// INSERT per category in the given order. sortOrder is the 1-based position
// in categories.
func RenderCategories(categories []productseed.Category, opts Options) string {
	lines := make([]string, 0, len(categories)+2)
	lines = append(lines,
		"-- Categories",
		fmt.Sprintf("TRUNCATE TABLE %s;", opts.CategoriesTable),
	)

	for i, c := range categories {
		lines = append(lines, fmt.Sprintf(
			"INSERT INTO %s (name, slug, sortOrder, isActive) VALUES (%s, %s, %d, 1);",
			opts.CategoriesTable, QuoteLiteral(c.Name), QuoteLiteral(c.Slug), i+1,
		))
	}

	return strings.Join(lines, "\n")
}

// RenderProducts renders the product block: a TRUNCATE followed by one
// INSERT per product, ordered by article.
func RenderProducts(catalog *productseed.Catalog, opts Options) string {
	articles := catalog.Articles()

	lines := make([]string, 0, len(articles)+2)
	lines = append(lines,
		"-- Products",
		fmt.Sprintf("TRUNCATE TABLE %s;", opts.ProductsTable),
	)

	for _, a := range articles {
		lines = append(lines, RenderProduct(catalog.Products[a], opts))
	}

	return strings.Join(lines, "\n")
}

// RenderProduct renders the INSERT statement of one product.
func RenderProduct(p *productseed.Product, opts Options) string {
	return fmt.Sprintf(
		"INSERT INTO %s (article, name, category, images, isActive, stockStatus) VALUES (%s, %s, %s, %s, 1, %s);",
		opts.ProductsTable,
		QuoteLiteral(p.Article),
		QuoteLiteral(p.DisplayName()),
		QuoteLiteral(p.Category),
		QuoteLiteral(ImagesArray(p.Images)),
		QuoteLiteral(productseed.StockStatusInStock),
	)
}

// ImagesArray renders image paths as a JSON-style array of double-quoted
// strings separated by ", ": ["/a.jpg", "/b.jpg"].
// Paths are not JSON-escaped; they are plain filenames.
func ImagesArray(images []string) string {
	quoted := make([]string, len(images))
	for i, img := range images {
		quoted[i] = `"` + img + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// RenderDocument assembles the complete import script: character set
// statements, the category block and the product block, separated by blank
// lines. The result has no trailing newline.
func RenderDocument(categories []productseed.Category, catalog *productseed.Catalog, opts Options) string {
	parts := []string{
		fmt.Sprintf("SET NAMES %s;", opts.Charset),
		fmt.Sprintf("SET CHARACTER SET %s;", opts.Charset),
		"",
		RenderCategories(categories, opts),
		"",
		RenderProducts(catalog, opts),
	}
	return strings.Join(parts, "\n")
}
