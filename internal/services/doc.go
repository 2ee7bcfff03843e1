// Package services wires the scanner, the SQL renderer and the filesystem
// into the generation workflow used by the CLI.
package services
