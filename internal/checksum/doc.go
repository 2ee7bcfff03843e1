// Package checksum hashes rendered SQL documents.
//
// The generator hashes every document it renders and the output file it is
// about to replace; equal hashes mean a re-run changed nothing.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.CalculateRaw(document)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
