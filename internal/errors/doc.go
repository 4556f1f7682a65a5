// Package errors provides typed error values for envtray.
//
// Sentinel errors let callers branch on failure conditions with errors.Is()
// instead of matching message text. The tray codec keeps its own typed
// errors in the tray package; everything that concerns the project store,
// env files and workflows lives here.
//
// # Error Categories
//
//   - Store errors: a referenced entity is missing or duplicated
//     (ErrProjectNotFound, ErrProjectExists, ErrEnvFileNotFound, ErrGroupNotFound)
//   - Filesystem errors: the project root or its config is unusable
//     (ErrProjectPathNotFound, ErrInvalidProjectConfig)
//   - Transfer errors: export/import could not proceed (ErrNoProjects, ErrInvalidImport)
//   - Input errors: a flag value is malformed (ErrInvalidDateFormat)
//
// # Usage
//
// Wrap sentinels with the identifier that was being looked up:
//
//	return nil, fmt.Errorf("project %q: %w", id, errors.ErrProjectNotFound)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrProjectNotFound) {
//	    // Suggest `envtray project list`
//	}
package errors
