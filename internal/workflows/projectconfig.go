package workflows

import (
	"context"
	"path/filepath"

	"github.com/PolarWolf314/envtray/internal/audit"
	"github.com/PolarWolf314/envtray/internal/persist"
)

// SaveProjectConfigResult reports what was written.
type SaveProjectConfigResult struct {
	Path    string
	Presets int
}

// SaveProjectConfig writes the project's .hold-config.json from the store.
// Every saved group becomes a preset titled with the group name; when
// several env files carry a group of the same name the first one wins.
func SaveProjectConfig(ctx context.Context, projectID string) (*SaveProjectConfigResult, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(projectID)
	if err != nil {
		return nil, err
	}

	config := &persist.ProjectConfig{
		Name:          project.Name,
		Path:          project.Path,
		EnvFiles:      make([]persist.EnvFile, 0, len(project.EnvFiles)),
		PresetConfigs: []persist.PresetConfig{},
	}

	seen := make(map[string]bool)
	for _, f := range project.EnvFiles {
		config.EnvFiles = append(config.EnvFiles, persist.EnvFile{Name: f.Name, Path: f.Path, Content: f.Content})
		for _, g := range f.Groups {
			if seen[g.Name] {
				continue
			}
			seen[g.Name] = true
			config.PresetConfigs = append(config.PresetConfigs, persist.PresetConfig{
				Title:     g.Name,
				Variables: g.VariableMap(),
			})
		}
	}

	if err := gateway.SaveProjectConfig(config); err != nil {
		return nil, err
	}

	path := filepath.Join(project.Path, persist.ProjectConfigFile)
	entry := audit.LogWithUser("save-config")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.OutputPath = path
	audit.Log(entry)

	return &SaveProjectConfigResult{Path: path, Presets: len(config.PresetConfigs)}, nil
}
