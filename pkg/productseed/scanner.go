package productseed

// CatalogScanner builds a Catalog from an image tree.
type CatalogScanner interface {
	// Scan walks one folder per category under imagesDir, in the given order.
	// Folders that do not exist are skipped and reported in Catalog.MissingFolders.
	Scan(imagesDir string, categories []Category) (*Catalog, error)
}
