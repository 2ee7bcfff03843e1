package services

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/kovka-shop/productseed/internal/catalog"
	"github.com/kovka-shop/productseed/internal/checksum"
	"github.com/kovka-shop/productseed/internal/files/filesystem"
	"github.com/kovka-shop/productseed/internal/sqlgen"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

// Generator runs the scan -> render -> write pipeline.
// Thread-Safety: NOT safe for concurrent Generate() calls on the same instance
// writing the same output path.
type Generator struct {
	table      catalog.Table
	scanner    productseed.CatalogScanner
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
	logger     productseed.Logger
}

// NewGenerator creates a Generator with all dependencies injected.
// Panics on nil dependencies: those are wiring mistakes, not runtime conditions.
func NewGenerator(
	table catalog.Table,
	scanner productseed.CatalogScanner,
	fsProvider filesystem.FileSystemProvider,
	calculator checksum.Calculator,
	logger productseed.Logger,
) *Generator {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &Generator{
		table:      table,
		scanner:    scanner,
		fsProvider: fsProvider,
		calculator: calculator,
		logger:     logger,
	}
}

// Scan validates the configuration and scans the image tree.
func (g *Generator) Scan(cfg productseed.GenerateConfig) (*productseed.Catalog, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g.logger.Info("Scanning images...")
	g.logger.Verbose("Images directory: %s", cfg.ImagesDir)

	result, err := g.scanner.Scan(cfg.ImagesDir, g.table.Categories())
	if err != nil {
		return nil, err
	}

	for _, slug := range result.MissingFolders {
		g.logger.Verbose("Skipping missing folder: %s", slug)
	}
	g.logger.Info("Found %d unique products", result.Len())

	return result, nil
}

// Generate scans the image tree, renders the import script and writes it to
// cfg.OutputPath (unless cfg.DryRun).
func (g *Generator) Generate(cfg productseed.GenerateConfig) (*productseed.GenerateResult, error) {
	cfg.ApplyDefaults()
	opts := sqlgen.OptionsFromConfig(cfg)
	if err := errors.Join(cfg.Validate(), opts.Validate()); err != nil {
		return nil, err
	}

	result, err := g.Scan(cfg)
	if err != nil {
		return nil, err
	}

	sql := sqlgen.RenderDocument(g.table.Categories(), result, opts)
	out := &productseed.GenerateResult{
		Categories:     g.table.Len(),
		Products:       result.Len(),
		MissingFolders: result.MissingFolders,
		SQL:            sql,
		Checksum:       g.calculator.CalculateRaw([]byte(sql)),
	}

	if !cfg.DryRun {
		unchanged, err := g.write(cfg.OutputPath, []byte(sql))
		if err != nil {
			return nil, err
		}
		out.OutputPath = cfg.OutputPath
		out.Unchanged = unchanged
		g.logger.Info("SQL written to %s", cfg.OutputPath)
		if unchanged {
			g.logger.Verbose("Output unchanged (sha256 %s)", out.Checksum)
		} else {
			g.logger.Verbose("Output checksum: sha256 %s", out.Checksum)
		}
	}

	g.logger.Info("Total: %d categories, %d products", out.Categories, out.Products)
	return out, nil
}

// write replaces the output file and reports whether its previous content was identical.
func (g *Generator) write(path string, data []byte) (bool, error) {
	unchanged := false
	previous, err := g.fsProvider.ReadFile(path)
	switch {
	case err == nil:
		unchanged = checksum.Same(g.calculator, previous, data)
	case errors.Is(err, fs.ErrNotExist):
	default:
		g.logger.Verbose("Could not read previous output %s: %v", path, err)
	}

	if err := g.fsProvider.WriteFile(path, data); err != nil {
		return false, fmt.Errorf("failed to write %s: %w: %w", path, productseed.ErrWriteFailed, err)
	}
	return unchanged, nil
}
