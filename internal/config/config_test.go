package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productseed.yaml")
	content := `images_dir: site/public/images
output: build/seed.sql
charset: utf8
tables:
  categories: shop_categories
  products: shop_products
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "site/public/images", cfg.ImagesDir)
	assert.Equal(t, "build/seed.sql", cfg.Output)
	assert.Equal(t, "utf8", cfg.Charset)
	assert.Equal(t, "shop_categories", cfg.Tables.Categories)
	assert.Equal(t, "shop_products", cfg.Tables.Products)
}

func TestLoad_MinimalYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productseed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.sql\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.ImagesDir)
	assert.Equal(t, "out.sql", cfg.Output)
	assert.Equal(t, TablesConfig{}, cfg.Tables)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "productseed.yaml"))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productseed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{invalid"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productseed.yaml")
	want := &ProjectConfig{ImagesDir: "images", Tables: TablesConfig{Products: "items"}}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "output:", "empty fields are omitted")
}
