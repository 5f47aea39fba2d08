// Package utils provides shared helpers for the pigment CLI.
//
// # Filesystem Utilities
//
//   - StateFilePath: resolves where the settings blob is stored
//   - PathExists: reports whether a path exists
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//
// # I/O Utilities
//
//   - ReadStdin: reads all data from standard input
//
// # Terminal Utilities
//
//   - IsTerminal: checks if a file is attached to a terminal
package utils
