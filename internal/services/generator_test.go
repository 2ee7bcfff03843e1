package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovka-shop/productseed/internal/catalog"
	"github.com/kovka-shop/productseed/internal/checksum"
	"github.com/kovka-shop/productseed/internal/files/filesystem"
	"github.com/kovka-shop/productseed/internal/files/scanner"
	"github.com/kovka-shop/productseed/internal/logging"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

type failingScanner struct{ err error }

func (f failingScanner) Scan(string, []productseed.Category) (*productseed.Catalog, error) {
	return nil, f.err
}

func newTestGenerator(t *testing.T) (*Generator, *filesystem.MemoryFileSystem, *bytes.Buffer) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/site")
	var out bytes.Buffer
	logger := logging.NewConsoleLoggerTo(&out, &out, true)
	table := catalog.MustNewTable([]catalog.Entry{
		{Slug: "shary", Name: "Шары и сферы"},
		{Slug: "piki", Name: "Пики"},
	})
	g := NewGenerator(table, scanner.NewScannerWithFS(mfs), mfs, checksum.New(), logger)
	return g, mfs, &out
}

func TestNewGenerator_PanicsOnNilDependencies(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/")
	sc := scanner.NewScannerWithFS(mfs)
	table := catalog.Default()
	calc := checksum.New()
	logger := logging.NewNullLogger()

	assert.Panics(t, func() { NewGenerator(table, nil, mfs, calc, logger) })
	assert.Panics(t, func() { NewGenerator(table, sc, nil, calc, logger) })
	assert.Panics(t, func() { NewGenerator(table, sc, mfs, nil, logger) })
	assert.Panics(t, func() { NewGenerator(table, sc, mfs, calc, nil) })
	assert.NotPanics(t, func() { NewGenerator(table, sc, mfs, calc, logger) })
}

func TestGenerate_WritesDocument(t *testing.T) {
	g, mfs, out := newTestGenerator(t)
	mfs.AddFile("images/shary/SK.12.jpg", "")
	mfs.AddFile("images/shary/SK.12R.jpg", "")
	mfs.AddFile("images/piki/P1.png", "")

	res, err := g.Generate(productseed.GenerateConfig{ImagesDir: "images", OutputPath: "scripts/out.sql"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Categories)
	assert.Equal(t, 2, res.Products)
	assert.Equal(t, "scripts/out.sql", res.OutputPath)
	assert.False(t, res.Unchanged)
	assert.Len(t, res.Checksum, 64)

	written, err := mfs.ReadFile("scripts/out.sql")
	require.NoError(t, err)
	assert.Equal(t, res.SQL, string(written))
	assert.True(t, strings.HasPrefix(res.SQL, "SET NAMES utf8mb4;\n"))
	assert.Contains(t, res.SQL, `'["/images/shary/SK.12.jpg", "/images/shary/SK.12R.jpg"]'`)
	assert.False(t, strings.HasSuffix(res.SQL, "\n"))

	log := out.String()
	assert.Contains(t, log, "Scanning images...")
	assert.Contains(t, log, "Found 2 unique products")
	assert.Contains(t, log, "SQL written to scripts/out.sql")
	assert.Contains(t, log, "Total: 2 categories, 2 products")
}

func TestGenerate_DryRunDoesNotWrite(t *testing.T) {
	g, mfs, out := newTestGenerator(t)
	mfs.AddFile("images/shary/SK.12.jpg", "")

	res, err := g.Generate(productseed.GenerateConfig{ImagesDir: "images", DryRun: true})
	require.NoError(t, err)

	assert.Empty(t, res.OutputPath)
	assert.NotEmpty(t, res.SQL)
	assert.Equal(t, []string{"images/shary/SK.12.jpg"}, mfs.Paths())
	assert.NotContains(t, out.String(), "SQL written")
}

func TestGenerate_DetectsUnchangedOutput(t *testing.T) {
	g, mfs, _ := newTestGenerator(t)
	mfs.AddFile("images/piki/P1.png", "")
	cfg := productseed.GenerateConfig{ImagesDir: "images", OutputPath: "out.sql"}

	first, err := g.Generate(cfg)
	require.NoError(t, err)
	assert.False(t, first.Unchanged)

	second, err := g.Generate(cfg)
	require.NoError(t, err)
	assert.True(t, second.Unchanged)
	assert.Equal(t, first.Checksum, second.Checksum)

	mfs.AddFile("images/piki/P2.png", "")
	third, err := g.Generate(cfg)
	require.NoError(t, err)
	assert.False(t, third.Unchanged)
}

func TestGenerate_MissingFoldersAreReported(t *testing.T) {
	g, mfs, out := newTestGenerator(t)
	mfs.AddFile("images/shary/SK.1.jpg", "")

	res, err := g.Generate(productseed.GenerateConfig{ImagesDir: "images", OutputPath: "out.sql"})
	require.NoError(t, err)

	assert.Equal(t, []string{"piki"}, res.MissingFolders)
	assert.Contains(t, out.String(), "Skipping missing folder: piki")
	// categories are emitted regardless of missing folders
	assert.Contains(t, res.SQL, "'piki'")
}

func TestGenerate_EmptyImagesTree(t *testing.T) {
	g, _, _ := newTestGenerator(t)

	res, err := g.Generate(productseed.GenerateConfig{ImagesDir: "images", OutputPath: "out.sql"})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Products)
	assert.True(t, strings.HasSuffix(res.SQL, "TRUNCATE TABLE products;"))
}

func TestGenerate_WriteFailure(t *testing.T) {
	g, mfs, _ := newTestGenerator(t)
	mfs.FailOn("out.sql", errors.New("disk full"))

	_, err := g.Generate(productseed.GenerateConfig{ImagesDir: "images", OutputPath: "out.sql"})
	require.Error(t, err)
	assert.ErrorIs(t, err, productseed.ErrWriteFailed)
	assert.Equal(t, productseed.ExitWriteFailed, productseed.ExitCodeForError(err))
}

func TestGenerate_ScanFailure(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/")
	scanErr := errors.New("boom")
	g := NewGenerator(catalog.Default(), failingScanner{err: scanErr}, mfs, checksum.New(), logging.NewNullLogger())

	_, err := g.Generate(productseed.GenerateConfig{ImagesDir: "images", OutputPath: "out.sql"})
	assert.ErrorIs(t, err, scanErr)
	assert.Empty(t, mfs.Paths())
}

func TestGenerate_InvalidConfig(t *testing.T) {
	g, _, _ := newTestGenerator(t)

	tests := []struct {
		name string
		cfg  productseed.GenerateConfig
	}{
		{"same tables", productseed.GenerateConfig{CategoriesTable: "t", ProductsTable: "t"}},
		{"bad identifier", productseed.GenerateConfig{ProductsTable: "products; DROP"}},
		{"bad charset", productseed.GenerateConfig{Charset: "utf8'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, productseed.ErrInvalidConfig)
		})
	}
}

func TestGenerate_CustomTables(t *testing.T) {
	g, mfs, _ := newTestGenerator(t)
	mfs.AddFile("images/piki/P1.png", "")

	res, err := g.Generate(productseed.GenerateConfig{
		ImagesDir:       "images",
		DryRun:          true,
		CategoriesTable: "cats",
		ProductsTable:   "items",
		Charset:         "utf8",
	})
	require.NoError(t, err)

	assert.Contains(t, res.SQL, "SET NAMES utf8;")
	assert.Contains(t, res.SQL, "TRUNCATE TABLE cats;")
	assert.Contains(t, res.SQL, "INSERT INTO items ")
}

func TestScan_ReturnsCatalog(t *testing.T) {
	g, mfs, _ := newTestGenerator(t)
	mfs.AddFile("images/shary/A.jpg", "")
	mfs.AddFile("images/shary/AL.jpg", "")

	cat, err := g.Scan(productseed.GenerateConfig{ImagesDir: "images", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, cat.Articles())
}
