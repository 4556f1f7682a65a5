// Package configs manages the user configuration for envtray.
//
// Everything lives under a single per-user directory,
// os.UserConfigDir()/envtray:
//
//   - config.toml: application settings
//   - projects.json: the project store (see package store)
//   - audit.jsonl: the operation log (see package audit)
//
// # Settings
//
// UserSettings holds the computed paths and is initialised at startup. The
// ENVTRAY_CONFIG_DIR environment variable relocates the whole directory,
// which tests and portable installs rely on.
//
// # Configuration
//
// config.toml is optional. Missing keys take the values from Defaults:
//
//	[store]
//	path = "<config dir>/envtray/projects.json"
//
//	[export]
//	dir = "<home>/envtray-exports"
//
//	[tray]
//	tooltip = "envtray"
//	title = ""
//	default_category = "Uncategorized"
//
//	[updates]
//	repo = "PolarWolf314/envtray"
//	check = true
package configs
