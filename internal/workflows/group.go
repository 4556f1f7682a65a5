package workflows

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/PolarWolf314/envtray/internal/audit"
	"github.com/PolarWolf314/envtray/internal/envfile"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
)

// GroupRef names a group by project id, env file (path or name) and group id.
type GroupRef struct {
	ProjectID string
	EnvFile   string
	GroupID   string
}

// AddGroupOptions configures the add-group workflow.
type AddGroupOptions struct {
	ProjectID   string
	EnvFile     string
	Name        string
	Description string
	Category    string
	Variables   []model.EnvVariable

	// FromFile seeds the group with the env file's current variables
	// instead of a category template's keys. Variables then override keys
	// or are appended.
	FromFile bool
}

// AddGroup saves a new configuration group on an env file. The group gets
// a generated id. When the category names a category template of the env
// file, the group starts with the template's keys, empty.
//
// Returns ErrInvalidGroup if the name is empty or a variable has no key.
func AddGroup(ctx context.Context, opts AddGroupOptions) (*model.EnvGroup, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", kerrors.ErrInvalidGroup)
	}
	for _, v := range opts.Variables {
		if strings.TrimSpace(v.Key) == "" {
			return nil, fmt.Errorf("%w: variable with empty key", kerrors.ErrInvalidGroup)
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(opts.ProjectID)
	if err != nil {
		return nil, err
	}
	envFile, err := findEnvFile(project, opts.EnvFile)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(opts.Category)
	variables := opts.Variables
	if opts.FromFile {
		content, err := gateway.ReadTextFile(envFile.Path)
		if err != nil {
			return nil, err
		}
		variables = overlayVariables(envfile.Parse(content), opts.Variables)
	} else if template, ok := envFile.FindTemplate(category); ok && category != "" {
		variables = overlayVariables(templateVariables(template), opts.Variables)
	}

	group := model.EnvGroup{
		ID:          newID(),
		Name:        name,
		Description: opts.Description,
		Category:    category,
		Variables:   variables,
	}
	if group.Variables == nil {
		group.Variables = []model.EnvVariable{}
	}
	envFile.Groups = append(envFile.Groups, group)
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("group-add")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.EnvFile = envFile.Path
	entry.GroupID = group.ID
	entry.GroupName = group.Name
	audit.Log(entry)

	return &group, nil
}

// overlayVariables replaces the value of keys already in base and appends
// the rest in order.
func overlayVariables(base, overrides []model.EnvVariable) []model.EnvVariable {
	result := append([]model.EnvVariable(nil), base...)
	index := make(map[string]int, len(result))
	for i, v := range result {
		index[v.Key] = i
	}
	for _, v := range overrides {
		if i, ok := index[v.Key]; ok {
			result[i].Value = v.Value
			continue
		}
		index[v.Key] = len(result)
		result = append(result, v)
	}
	return result
}

// UpdateGroupOptions configures the edit-group workflow. Nil fields keep the
// group's current value.
type UpdateGroupOptions struct {
	ProjectID   string
	EnvFile     string
	GroupID     string
	Name        *string
	Description *string
	Category    *string

	// Variables override existing keys or are appended.
	Variables []model.EnvVariable

	// Unset removes keys from the group. It runs after Variables.
	Unset []string
}

// UpdateGroup edits a configuration group in place. The id, and with it the
// group's tray token, never changes.
//
// Returns ErrGroupNotFound if the group does not resolve, and ErrInvalidGroup
// if the name would become empty or a variable has no key.
func UpdateGroup(ctx context.Context, opts UpdateGroupOptions) (*model.EnvGroup, error) {
	if opts.Name != nil && strings.TrimSpace(*opts.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", kerrors.ErrInvalidGroup)
	}
	for _, v := range opts.Variables {
		if strings.TrimSpace(v.Key) == "" {
			return nil, fmt.Errorf("%w: variable with empty key", kerrors.ErrInvalidGroup)
		}
	}

	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(opts.ProjectID)
	if err != nil {
		return nil, err
	}
	envFile, err := findEnvFile(project, opts.EnvFile)
	if err != nil {
		return nil, err
	}
	group, err := findGroup(envFile, opts.GroupID)
	if err != nil {
		return nil, err
	}

	if opts.Name != nil {
		group.Name = strings.TrimSpace(*opts.Name)
	}
	if opts.Description != nil {
		group.Description = *opts.Description
	}
	if opts.Category != nil {
		group.Category = strings.TrimSpace(*opts.Category)
	}
	group.Variables = withoutKeys(overlayVariables(group.Variables, opts.Variables), opts.Unset)
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("group-update")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.EnvFile = envFile.Path
	entry.GroupID = group.ID
	entry.GroupName = group.Name
	audit.Log(entry)

	updated := *group
	return &updated, nil
}

func withoutKeys(vars []model.EnvVariable, keys []string) []model.EnvVariable {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[strings.TrimSpace(k)] = true
	}
	kept := make([]model.EnvVariable, 0, len(vars))
	for _, v := range vars {
		if !drop[v.Key] {
			kept = append(kept, v)
		}
	}
	return kept
}

// RemoveGroup deletes a configuration group. The env file on disk is not
// changed.
func RemoveGroup(ctx context.Context, ref GroupRef) (*model.EnvGroup, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(ref.ProjectID)
	if err != nil {
		return nil, err
	}
	envFile, err := findEnvFile(project, ref.EnvFile)
	if err != nil {
		return nil, err
	}
	group, err := findGroup(envFile, ref.GroupID)
	if err != nil {
		return nil, err
	}
	removed := *group

	kept := envFile.Groups[:0]
	for _, g := range envFile.Groups {
		if g.ID != removed.ID {
			kept = append(kept, g)
		}
	}
	envFile.Groups = kept
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("group-remove")
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.EnvFile = envFile.Path
	entry.GroupID = removed.ID
	entry.GroupName = removed.Name
	audit.Log(entry)

	return &removed, nil
}

// EnvFileGroups is one env file with its saved groups.
type EnvFileGroups struct {
	EnvFile model.EnvFile
	Groups  []model.EnvGroup
}

// ListGroups returns the groups of every env file of a project, or of a
// single env file when envFileRef is not empty.
func ListGroups(ctx context.Context, projectID, envFileRef string) ([]EnvFileGroups, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(projectID)
	if err != nil {
		return nil, err
	}

	if envFileRef != "" {
		envFile, err := findEnvFile(project, envFileRef)
		if err != nil {
			return nil, err
		}
		return []EnvFileGroups{{EnvFile: *envFile, Groups: envFile.Groups}}, nil
	}

	listing := make([]EnvFileGroups, 0, len(project.EnvFiles))
	for _, f := range project.EnvFiles {
		listing = append(listing, EnvFileGroups{EnvFile: f, Groups: f.Groups})
	}
	return listing, nil
}

// RenderGroup returns a group's KEY=VALUE lines.
func RenderGroup(ctx context.Context, ref GroupRef) (string, error) {
	s, err := openSession(ctx)
	if err != nil {
		return "", err
	}
	project, err := s.project(ref.ProjectID)
	if err != nil {
		return "", err
	}
	envFile, err := findEnvFile(project, ref.EnvFile)
	if err != nil {
		return "", err
	}
	group, err := findGroup(envFile, ref.GroupID)
	if err != nil {
		return "", err
	}
	return envfile.Render(*group), nil
}

// ParseAssignments turns KEY=VALUE arguments into variables.
func ParseAssignments(assignments []string) ([]model.EnvVariable, error) {
	vars := make([]model.EnvVariable, 0, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not KEY=VALUE", kerrors.ErrInvalidGroup, a)
		}
		vars = append(vars, model.EnvVariable{Key: key, Value: strings.TrimSpace(value)})
	}
	return vars, nil
}

func variablesFromMap(vars map[string]string) []model.EnvVariable {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]model.EnvVariable, 0, len(keys))
	for _, k := range keys {
		result = append(result, model.EnvVariable{Key: k, Value: vars[k]})
	}
	return result
}
