// Package logging provides concrete implementations of the productseed.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: progress lines to stdout, verbose and error lines to stderr
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
