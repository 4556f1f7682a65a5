package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/store"
)

// MoveProjectOptions configures the move workflow.
type MoveProjectOptions struct {
	ProjectID string
	NewPath   string
}

// MoveProject points a project at a new root, for example after the
// repository was cloned elsewhere. Env file paths follow the root; groups
// are kept.
//
// Returns ErrProjectPathNotFound if the new root is not a directory and
// ErrProjectExists if another project already uses it.
func MoveProject(ctx context.Context, opts MoveProjectOptions) (*model.Project, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(opts.ProjectID)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(opts.NewPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", opts.NewPath, err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, kerrors.ErrProjectPathNotFound)
	}
	if other, ok := store.FindProjectByPath(s.projects, root); ok && other.ID != project.ID {
		return nil, fmt.Errorf("%s is registered as %q: %w", root, other.Name, kerrors.ErrProjectExists)
	}

	project.Path = root
	for i := range project.EnvFiles {
		project.EnvFiles[i].Path = filepath.Join(root, project.EnvFiles[i].Name)
	}
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("move")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.ProjectPath = root
	audit.Log(entry)

	return project, nil
}
