package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/kovka-shop/productseed/internal/article"
	"github.com/kovka-shop/productseed/internal/files/filesystem"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

// Scanner builds a product catalog from an image tree.
// A Scanner holds no per-scan state and may be reused.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// Scan visits <imagesDir>/<slug> for every category, in order.
//
// Missing folders are recorded in Catalog.MissingFolders and skipped. Any other
// error while listing a folder aborts the scan with productseed.ErrScanFailed.
func (s *Scanner) Scan(imagesDir string, categories []productseed.Category) (*productseed.Catalog, error) {
	catalog := productseed.NewCatalog()

	for _, cat := range categories {
		folder := filepath.Join(imagesDir, cat.Slug)

		entries, err := s.listFolder(folder)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				catalog.MissingFolders = append(catalog.MissingFolders, cat.Slug)
				continue
			}
			return nil, fmt.Errorf("failed to list %s: %w: %w", folder, productseed.ErrScanFailed, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !IsImageFile(entry.Name()) {
				continue
			}
			catalog.Add(article.Extract(entry.Name()), cat, ImageURL(cat.Slug, entry.Name()))
		}
	}

	return catalog, nil
}

// listFolder lists a category folder. A path that exists but is not a
// directory counts as missing.
func (s *Scanner) listFolder(folder string) ([]filesystem.FileInfo, error) {
	info, err := s.fsProvider.Stat(folder)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", folder, fs.ErrNotExist)
	}
	return s.fsProvider.ReadDir(folder)
}

// imageExtensions are matched case-insensitively.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImageFile reports whether filename carries one of the image extensions.
func IsImageFile(filename string) bool {
	return imageExtensions[strings.ToLower(article.Ext(filename))]
}

// ImageURL is the web path of an image: /images/<folder>/<filename>.
func ImageURL(folder, filename string) string {
	return path.Join(productseed.ImageURLPrefix, folder, filename)
}

// Verify Scanner implements the interface at compile time
var _ productseed.CatalogScanner = (*Scanner)(nil)
