// Package persist is the filesystem boundary of envtray.
//
// It covers three things:
//
//   - Env file discovery: ScanEnvFiles checks a project root for the fixed
//     set of recognised env file names and returns the ones that exist.
//   - Text files: ReadTextFile and WriteTextFile, with failures reported as
//     *IOError so callers can show the operation and path.
//   - Project configuration: .hold-config.json in a project root, validated
//     against an embedded JSON schema on load.
//
// Nothing here caches or retries. Every call goes to disk.
package persist
