package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/persist"
	"github.com/PolarWolf314/envtray/internal/store"
)

// PresetsCategory is the category given to groups created from a project's
// saved presets.
const PresetsCategory = "Presets"

// AddProjectOptions configures the add workflow.
type AddProjectOptions struct {
	// Path is the project root. Relative paths are resolved against the
	// working directory.
	Path string

	// Name overrides the name from .hold-config.json or the directory.
	Name string
}

// AddProjectResult contains the registered project.
type AddProjectResult struct {
	Project model.Project

	// PresetGroups is the number of groups created from saved presets.
	PresetGroups int
}

// AddProject registers the project rooted at opts.Path.
//
// Each recognised env file gets a default group parsed from its content.
// Every preset in .hold-config.json that has variables becomes a group in
// the Presets category of every env file.
//
// Returns ErrProjectExists if the path is already registered.
// Returns ErrProjectPathNotFound if the path is not a directory.
// Returns ErrInvalidProjectConfig if .hold-config.json fails validation.
func AddProject(ctx context.Context, opts AddProjectOptions) (*AddProjectResult, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", opts.Path, err)
	}

	if existing, ok := store.FindProjectByPath(s.projects, root); ok {
		return nil, fmt.Errorf("%s is registered as %q: %w", root, existing.Name, kerrors.ErrProjectExists)
	}

	config, err := gateway.LoadProjectConfig(root)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = config.Name
	}
	if name == "" {
		name = filepath.Base(root)
	}

	timestamp := now().UTC()
	project := model.Project{
		ID:           newID(),
		Name:         name,
		Path:         root,
		EnvFiles:     make([]model.EnvFile, 0, len(config.EnvFiles)),
		CreatedAt:    timestamp,
		LastModified: timestamp,
	}

	// A saved config may list files that were deleted since; rescanning
	// keeps the store in line with the disk.
	scanned, err := gateway.ScanEnvFiles(root)
	if err != nil {
		return nil, err
	}
	for _, file := range scanned {
		project.EnvFiles = append(project.EnvFiles, toModelEnvFile(file))
	}

	presets := presetGroups(config.PresetConfigs)
	for i := range project.EnvFiles {
		project.EnvFiles[i].Groups = append(project.EnvFiles[i].Groups, presets...)
	}

	s.projects = append(s.projects, project)
	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("add")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.ProjectPath = project.Path
	audit.Log(entry)

	return &AddProjectResult{Project: project, PresetGroups: len(presets)}, nil
}

// presetGroups converts non-empty presets into groups with fresh ids. Keys
// are sorted so the group content does not depend on map order.
func presetGroups(presets []persist.PresetConfig) []model.EnvGroup {
	var groups []model.EnvGroup
	for _, preset := range presets {
		if len(preset.Variables) == 0 {
			continue
		}
		groups = append(groups, model.EnvGroup{
			ID:        newID(),
			Name:      preset.Title,
			Category:  PresetsCategory,
			Variables: variablesFromMap(preset.Variables),
		})
	}
	return groups
}

// RefreshProjectOptions configures the refresh workflow.
type RefreshProjectOptions struct {
	ProjectID string
}

// RefreshProjectResult reports how the env file set changed.
type RefreshProjectResult struct {
	Project model.Project
	Added   []string
	Removed []string
}

// RefreshProject rescans the project's env files. Files that still exist
// keep their groups and category templates; new files get a default group;
// files that disappeared are dropped.
func RefreshProject(ctx context.Context, opts RefreshProjectOptions) (*RefreshProjectResult, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.project(opts.ProjectID)
	if err != nil {
		return nil, err
	}

	scanned, err := gateway.ScanEnvFiles(project.Path)
	if err != nil {
		return nil, err
	}

	result := &RefreshProjectResult{}
	seen := make(map[string]bool, len(scanned))
	refreshed := make([]model.EnvFile, 0, len(scanned))
	for _, file := range scanned {
		seen[file.Path] = true
		if existing, ok := findByPath(project.EnvFiles, file.Path); ok {
			existing.Content = file.Content
			refreshed = append(refreshed, existing)
			continue
		}
		refreshed = append(refreshed, toModelEnvFile(file))
		result.Added = append(result.Added, file.Name)
	}
	for _, old := range project.EnvFiles {
		if !seen[old.Path] {
			result.Removed = append(result.Removed, old.Name)
		}
	}

	project.EnvFiles = refreshed
	project.Touch(now())
	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("refresh")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	audit.Log(entry)

	result.Project = *project
	return result, nil
}

func findByPath(files []model.EnvFile, path string) (model.EnvFile, bool) {
	for _, f := range files {
		if f.Path == path {
			return f, true
		}
	}
	return model.EnvFile{}, false
}

// RemoveProjectOptions configures the remove workflow.
type RemoveProjectOptions struct {
	ProjectID string
}

// RemoveProject unregisters a project. Files on disk are not touched.
func RemoveProject(ctx context.Context, opts RemoveProjectOptions) (*model.Project, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.project(opts.ProjectID)
	if err != nil {
		return nil, err
	}
	removed := *project

	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != removed.ID {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("remove")
	entry.ProjectID = removed.ID
	entry.ProjectName = removed.Name
	audit.Log(entry)

	return &removed, nil
}

// ListProjects returns the registered projects in store order.
func ListProjects(ctx context.Context) ([]model.Project, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.projects, nil
}

// ResolveProject finds a project by id, then by name, then by root path.
//
// Returns ErrAmbiguousProject if ref is a name shared by several projects.
func ResolveProject(ctx context.Context, ref string) (*model.Project, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	if project, ok := store.FindProject(s.projects, ref); ok {
		return project, nil
	}

	var named []*model.Project
	for i := range s.projects {
		if s.projects[i].Name == ref {
			named = append(named, &s.projects[i])
		}
	}
	switch len(named) {
	case 1:
		return named[0], nil
	case 0:
	default:
		return nil, fmt.Errorf("%d projects are named %q, use the id: %w", len(named), ref, kerrors.ErrAmbiguousProject)
	}

	if abs, err := filepath.Abs(ref); err == nil {
		if project, ok := store.FindProjectByPath(s.projects, abs); ok {
			return project, nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", ref, kerrors.ErrProjectNotFound)
}

// ScanProject lists the env files under root without registering anything.
func ScanProject(ctx context.Context, root string) ([]persist.EnvFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	return gateway.ScanEnvFiles(abs)
}
