package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kovka-shop/productseed/internal/catalog"
	"github.com/kovka-shop/productseed/internal/checksum"
	"github.com/kovka-shop/productseed/internal/files/filesystem"
	"github.com/kovka-shop/productseed/internal/files/scanner"
	"github.com/kovka-shop/productseed/internal/logging"
	"github.com/kovka-shop/productseed/internal/services"
	"github.com/kovka-shop/productseed/internal/tui"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

var rootCmd = &cobra.Command{
	Use:   "productseed",
	Short: "Generate the product catalog import script from the image tree",
	Long: `productseed scans the product image folders (one folder per category),
groups left/right image variants into one article, and writes a MySQL import
script that reloads the productCategories and products tables.

Run without arguments to regenerate scripts/products_import.sql from
client/public/images.

Configuration precedence (highest first):
  flags > PRODUCTSEED_IMAGES_DIR / PRODUCTSEED_OUTPUT > productseed.yaml > defaults

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - Image tree could not be read
  13 - Output file could not be written`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// rootFlags holds values of the persistent and generation flags.
type rootFlags struct {
	imagesDir  string
	output     string
	configPath string
	dryRun     bool
}

var flags rootFlags

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&flags.imagesDir, "images-dir", "", "Root of the product image tree (default "+productseed.DefaultImagesDir+")")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", productseed.DefaultConfigFile, "Path of the project config file")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "SQL file to write (default "+productseed.DefaultOutputPath+")")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the SQL to stdout instead of writing the output file")

	_ = rootCmd.MarkPersistentFlagDirname("images-dir")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	_ = rootCmd.MarkFlagFilename("output", "sql")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// newGenerator wires the OS-backed generator for table.
func newGenerator(table catalog.Table, logger productseed.Logger) *services.Generator {
	fsProvider := filesystem.NewOSFileSystem()
	return services.NewGenerator(
		table,
		scanner.NewScannerWithFS(fsProvider),
		fsProvider,
		checksum.New(),
		logger,
	)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := resolveGenerateConfig(cmd, flags, verbose)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// In dry-run mode stdout carries the SQL, so progress moves to stderr.
	progress := stdout
	if cfg.DryRun {
		progress = stderr
	}
	logger := logging.NewConsoleLoggerTo(progress, stderr, verbose)

	result, err := newGenerator(catalog.Default(), logger).Generate(cfg)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Fprint(stdout, result.SQL)
		return nil
	}

	printSummary(stderr, result)
	return nil
}

// printSummary reports the checksum and skipped folders on w.
func printSummary(w io.Writer, result *productseed.GenerateResult) {
	p := tui.NewPrinter(tui.DetectMode(w))

	short := result.Checksum
	if len(short) > 12 {
		short = short[:12]
	}

	if result.Unchanged {
		fmt.Fprintln(w, p.Muted(fmt.Sprintf("sha256 %s (unchanged)", short)))
	} else {
		fmt.Fprintln(w, p.Success(fmt.Sprintf("sha256 %s", short)))
	}

	if n := len(result.MissingFolders); n > 0 {
		fmt.Fprintln(w, p.Warning(fmt.Sprintf("%d category folder(s) missing; run with -v to list them", n)))
	}
}
