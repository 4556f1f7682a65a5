package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/envtray/internal/configs"
	"github.com/PolarWolf314/envtray/internal/envfile"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/persist"
	"github.com/PolarWolf314/envtray/internal/store"
	"github.com/google/uuid"
)

// Replaced in tests.
var (
	gateway persist.ProjectGateway = persist.FS{}
	now                            = time.Now
	newID                          = uuid.NewString
)

// session is a loaded configuration plus the project store it points at.
type session struct {
	config   *configs.Config
	projects []model.Project
}

func openSession(ctx context.Context) (*session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	config, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	projects, err := store.Load(config.Store.Path)
	if err != nil {
		return nil, err
	}

	return &session{config: config, projects: projects}, nil
}

func (s *session) save() error {
	return store.Save(s.config.Store.Path, s.projects)
}

func (s *session) project(id string) (*model.Project, error) {
	project, ok := store.FindProject(s.projects, id)
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, kerrors.ErrProjectNotFound)
	}
	return project, nil
}

func findEnvFile(project *model.Project, ref string) (*model.EnvFile, error) {
	envFile, ok := project.FindEnvFile(ref)
	if !ok {
		return nil, fmt.Errorf("%s in project %q: %w", ref, project.Name, kerrors.ErrEnvFileNotFound)
	}
	return envFile, nil
}

func findGroup(envFile *model.EnvFile, id string) (*model.EnvGroup, error) {
	group, ok := envFile.FindGroup(id)
	if !ok {
		return nil, fmt.Errorf("group %q in %s: %w", id, envFile.Name, kerrors.ErrGroupNotFound)
	}
	return group, nil
}

// defaultGroup is the group built from an env file's own content.
func defaultGroup(content string) model.EnvGroup {
	return model.EnvGroup{
		ID:        model.DefaultGroupID,
		Name:      model.DefaultGroupName,
		Variables: envfile.Parse(content),
	}
}

func toModelEnvFile(file persist.EnvFile) model.EnvFile {
	return model.EnvFile{
		Name:    file.Name,
		Path:    file.Path,
		Content: file.Content,
		Groups:  []model.EnvGroup{defaultGroup(file.Content)},
	}
}
