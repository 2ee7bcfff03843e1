package productseed

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Generation completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (unknown flag, unexpected args)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitScanFailed   = 12 // Image tree could not be read
	ExitWriteFailed  = 13 // Output file could not be written
)

const (
	// DefaultImagesDir is the image tree scanned when nothing else is configured.
	// Relative to the working directory.
	DefaultImagesDir = "client/public/images"

	// DefaultOutputPath is where the generated SQL lands by default.
	DefaultOutputPath = "scripts/products_import.sql"

	// DefaultConfigFile is the optional project config looked up in the working directory.
	DefaultConfigFile = "productseed.yaml"

	// DefaultCharset is used for SET NAMES / SET CHARACTER SET.
	DefaultCharset = "utf8mb4"

	// DefaultCategoriesTable and DefaultProductsTable are the seeded tables.
	DefaultCategoriesTable = "productCategories"
	DefaultProductsTable   = "products"

	// ImageURLPrefix is the web root under which category folders are served.
	ImageURLPrefix = "/images"

	// StockStatusInStock is written into every product row.
	StockStatusInStock = "in_stock"
)

// EnvImagesDir and EnvOutputPath override the config file (but not flags).
const (
	EnvImagesDir  = "PRODUCTSEED_IMAGES_DIR"
	EnvOutputPath = "PRODUCTSEED_OUTPUT"
)
