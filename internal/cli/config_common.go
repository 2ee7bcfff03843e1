package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kovka-shop/productseed/internal/config"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

// loadProjectConfig loads godotenv and the project configuration.
// Returns nil config if the file does not exist and was not asked for explicitly.
func loadProjectConfig(path string, explicit bool) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			if explicit {
				return nil, fmt.Errorf("config file %s not found: %w", path, productseed.ErrInvalidConfig)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w: %w", path, productseed.ErrInvalidConfig, err)
	}
	return projectCfg, nil
}

// resolveGenerateConfig merges flags, environment and productseed.yaml.
// Priority (highest to lowest): flags > environment > productseed.yaml > defaults
func resolveGenerateConfig(cmd *cobra.Command, f rootFlags, verbose bool) (productseed.GenerateConfig, error) {
	explicit := cmd.Flags().Changed("config")
	projectCfg, err := loadProjectConfig(f.configPath, explicit)
	if err != nil {
		return productseed.GenerateConfig{}, err
	}
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	} else if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[VERBOSE] Loaded config from %s\n", f.configPath)
	}

	cfg := productseed.GenerateConfig{
		ImagesDir:       firstNonEmpty(f.imagesDir, os.Getenv(productseed.EnvImagesDir), projectCfg.ImagesDir),
		OutputPath:      firstNonEmpty(f.output, os.Getenv(productseed.EnvOutputPath), projectCfg.Output),
		Charset:         projectCfg.Charset,
		CategoriesTable: projectCfg.Tables.Categories,
		ProductsTable:   projectCfg.Tables.Products,
		DryRun:          f.dryRun,
		Verbose:         verbose,
	}
	cfg.ApplyDefaults()

	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[VERBOSE] Images: %s, output: %s\n", cfg.ImagesDir, cfg.OutputPath)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
