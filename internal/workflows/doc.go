// Package workflows provides high-level orchestration for envtray commands.
//
// Workflows coordinate the project store, the persistence gateway, the env
// file merge and the audit log to implement complete user-facing features.
// Both the CLI and the tray host call them; neither contains business logic
// of its own.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading configuration and the project store
//   - Validating references (project, env file, group)
//   - Performing the core operation and saving the store
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - AddProject, RefreshProject, RemoveProject, ListProjects, ScanProject
//   - AddGroup, UpdateGroup, RemoveGroup, ListGroups, RenderGroup
//   - SaveCategoryTemplate, CopyCategoryTemplate, RemoveCategoryTemplate,
//     ListCategoryTemplates
//   - ApplyGroup: writes one group per category into an env file
//   - SaveProjectConfig: writes .hold-config.json from the store
//   - Export, Import: move projects between machines
//   - Tree: the store projected into the tray hierarchy
//   - Log: reads and filters the audit log
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package:
//
//	result, err := workflows.ApplyGroup(ctx, opts)
//	if errors.Is(err, kerrors.ErrGroupNotFound) {
//	    // Suggest `envtray group list`
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and return its error if it is already done.
package workflows
