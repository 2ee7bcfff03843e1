package productseed

import (
	"errors"
	"fmt"
	"sort"
)

// Category is one entry of the static category table.
// The slug doubles as the image folder name.
type Category struct {
	// Slug is the folder name and the unique key of the category
	Slug string

	// Name is the display name written into both tables
	Name string

	// SortOrder is the 1-based position in the category table
	SortOrder int

	// ArticlePrefix is the article prefix products of this folder usually carry ("SK50").
	// Informational: only the scan report looks at it.
	ArticlePrefix string
}

// Product is one distinct article discovered in the image tree.
type Product struct {
	Article string

	// Category is the display name of the folder that produced the product.
	// When an article shows up in several folders the last folder scanned wins.
	Category string

	// Folder is the slug of that same folder
	Folder string

	// Images holds web paths in discovery order, without duplicates
	Images []string
}

// AddImage appends a web path unless the product already references it.
// Reports whether the path was added.
func (p *Product) AddImage(path string) bool {
	for _, existing := range p.Images {
		if existing == path {
			return false
		}
	}
	p.Images = append(p.Images, path)
	return true
}

// DisplayName is the synthesized product name: "<category> <article>".
func (p *Product) DisplayName() string {
	return p.Category + " " + p.Article
}

// Catalog is the result of scanning the image tree.
type Catalog struct {
	// Products maps article -> product
	Products map[string]*Product

	// MissingFolders lists category slugs whose folder does not exist, in table order
	MissingFolders []string

	// FolderCounts is the number of image files accepted per folder slug
	FolderCounts map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Products:     make(map[string]*Product),
		FolderCounts: make(map[string]int),
	}
}

// Add records one image file for an article found in the folder of cat.
// The product is created on first sight; its category is overwritten on every call.
func (c *Catalog) Add(article string, cat Category, imagePath string) *Product {
	p, ok := c.Products[article]
	if !ok {
		p = &Product{Article: article}
		c.Products[article] = p
	}
	p.Category = cat.Name
	p.Folder = cat.Slug
	p.AddImage(imagePath)
	c.FolderCounts[cat.Slug]++
	return p
}

// Get returns the product for an article.
func (c *Catalog) Get(article string) (*Product, bool) {
	p, ok := c.Products[article]
	return p, ok
}

// Len returns the number of distinct products.
func (c *Catalog) Len() int {
	return len(c.Products)
}

// Articles returns all articles in ascending byte order.
// Byte order of UTF-8 strings equals code point order.
func (c *Catalog) Articles() []string {
	articles := make([]string, 0, len(c.Products))
	for a := range c.Products {
		articles = append(articles, a)
	}
	sort.Strings(articles)
	return articles
}

// ProductsInFolder returns the products whose final folder is slug, sorted by article.
func (c *Catalog) ProductsInFolder(slug string) []*Product {
	var out []*Product
	for _, a := range c.Articles() {
		if p := c.Products[a]; p.Folder == slug {
			out = append(out, p)
		}
	}
	return out
}

// GenerateConfig contains all parameters needed for a generation run.
type GenerateConfig struct {
	// ImagesDir is the root of the image tree (one sub-folder per category)
	ImagesDir string

	// OutputPath is the SQL file to write. Ignored when DryRun is set.
	OutputPath string

	// Charset is used for SET NAMES / SET CHARACTER SET
	Charset string

	// CategoriesTable and ProductsTable name the seeded tables
	CategoriesTable string
	ProductsTable   string

	// DryRun renders the SQL without writing the output file
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// ApplyDefaults fills empty fields with package defaults.
func (c *GenerateConfig) ApplyDefaults() {
	if c.ImagesDir == "" {
		c.ImagesDir = DefaultImagesDir
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Charset == "" {
		c.Charset = DefaultCharset
	}
	if c.CategoriesTable == "" {
		c.CategoriesTable = DefaultCategoriesTable
	}
	if c.ProductsTable == "" {
		c.ProductsTable = DefaultProductsTable
	}
}

// Validate checks if the GenerateConfig has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.ImagesDir == "" {
		errs = append(errs, fmt.Errorf("ImagesDir is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" && !c.DryRun {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	if c.CategoriesTable != "" && c.CategoriesTable == c.ProductsTable {
		errs = append(errs, fmt.Errorf("categories and products tables must differ: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// GenerateResult summarizes a generation run.
type GenerateResult struct {
	Categories int
	Products   int

	// MissingFolders is copied from the scanned catalog
	MissingFolders []string

	// OutputPath is empty for dry runs
	OutputPath string

	// SQL is the full rendered document
	SQL string

	// Checksum is the SHA-256 (hex) of SQL
	Checksum string

	// Unchanged is true when the previous output file had identical content
	Unchanged bool
}
