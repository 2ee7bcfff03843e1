// Package filesystem provides the filesystem abstraction used by the scanner
// and the generator.
//
// The scanner only needs flat directory listings and the generator only needs
// to read back and write one file, so the interface is kept to those calls.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Errors for paths that do not exist wrap fs.ErrNotExist in both
// implementations, so callers can test with errors.Is.
package filesystem
