// Package productseed holds the public types of the product seed generator:
// the category and product model, the scan result, run configuration,
// sentinel errors and exit codes.
package productseed
