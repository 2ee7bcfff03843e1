package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kovka-shop/productseed/internal/config"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a productseed.yaml with the default settings",
	Long: `Write a productseed.yaml populated with the default settings, so they can
be edited instead of passed as flags on every run.

The file is written to the path given by --config. An existing file is left
alone unless --force is set.

Examples:
  productseed init
  productseed init --config deploy/productseed.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

// defaultProjectConfig returns the config file content matching the built-in defaults.
func defaultProjectConfig() *config.ProjectConfig {
	return &config.ProjectConfig{
		ImagesDir: productseed.DefaultImagesDir,
		Output:    productseed.DefaultOutputPath,
		Charset:   productseed.DefaultCharset,
		Tables: config.TablesConfig{
			Categories: productseed.DefaultCategoriesTable,
			Products:   productseed.DefaultProductsTable,
		},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	path := flags.configPath

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite): %w", path, productseed.ErrInvalidConfig)
	}

	if err := config.Save(path, defaultProjectConfig()); err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", path, productseed.ErrWriteFailed, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
