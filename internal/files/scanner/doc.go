// Package scanner discovers product images and groups them into products.
//
// The scanner is responsible for:
//   - Visiting one folder per category under the images root, in table order
//   - Skipping category folders that do not exist
//   - Keeping image files only (.jpg, .jpeg, .png, .gif, .webp, any case)
//   - Deriving an article per file and merging files that share it
//
// The scanner is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
