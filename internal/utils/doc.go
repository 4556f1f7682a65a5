// Package utils provides shared utility functions for envtray.
//
// # Filesystem Utilities
//
//   - FindProjectRoot: walks up directories to find a project marker
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - SanitizeFileName: normalizes a display name for use in a file name
//
// # Terminal Utilities
//
//   - IsOutputTerminal: decides whether spinners and banners are drawn
//   - IsInputTerminal: tells a pipe on stdin from an interactive shell
package utils
