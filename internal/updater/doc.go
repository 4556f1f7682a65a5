// Package updater checks GitHub Releases for a newer envtray version.
//
// It only reports; installing the update is left to the user's package
// manager. Results are cached for a day in the config directory so the tray
// can check at startup without hitting the API on every launch.
package updater
