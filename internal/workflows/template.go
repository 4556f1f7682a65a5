package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
)

// TemplateRef names a category template by project id, env file and
// template id or name.
type TemplateRef struct {
	ProjectID  string
	EnvFile    string
	TemplateID string
}

// SaveTemplateOptions configures the save-template workflow.
type SaveTemplateOptions struct {
	ProjectID string
	EnvFile   string

	// TemplateID selects a template to replace. Empty adds a new one.
	TemplateID string

	Name        string
	Description string
	Keys        []string
}

// SaveCategoryTemplate adds a category template to an env file, or replaces
// the one TemplateID names while keeping its id.
//
// Returns ErrInvalidTemplate if the name is empty or no key is given, and
// ErrTemplateNotFound if TemplateID does not resolve.
func SaveCategoryTemplate(ctx context.Context, opts SaveTemplateOptions) (*model.CategoryTemplate, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", kerrors.ErrInvalidTemplate)
	}
	keys := cleanKeys(opts.Keys)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: at least one key is required", kerrors.ErrInvalidTemplate)
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

	operation := "template-add"
	template := model.CategoryTemplate{
		ID:          newID(),
		Name:        name,
		Description: opts.Description,
		Keys:        keys,
	}
	if opts.TemplateID != "" {
		existing, err := findTemplate(envFile, opts.TemplateID)
		if err != nil {
			return nil, err
		}
		operation = "template-update"
		template.ID = existing.ID
		if template.ID == "" {
			template.ID = newID()
		}
		*existing = template
	} else {
		envFile.CategoryTemplates = append(envFile.CategoryTemplates, template)
	}
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}
	logTemplateChange(operation, project, envFile, template)
	return &template, nil
}

// CopyCategoryTemplate saves a copy of a template under a new id. The copy
// is named "<name> copy".
func CopyCategoryTemplate(ctx context.Context, ref TemplateRef) (*model.CategoryTemplate, error) {
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
	source, err := findTemplate(envFile, ref.TemplateID)
	if err != nil {
		return nil, err
	}

	template := model.CategoryTemplate{
		ID:          newID(),
		Name:        source.Name + " copy",
		Description: source.Description,
		Keys:        append([]string(nil), source.Keys...),
	}
	envFile.CategoryTemplates = append(envFile.CategoryTemplates, template)
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}
	logTemplateChange("template-add", project, envFile, template)
	return &template, nil
}

// RemoveCategoryTemplate deletes a template. Groups already created from
// it are not changed.
func RemoveCategoryTemplate(ctx context.Context, ref TemplateRef) (*model.CategoryTemplate, error) {
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
	target, err := findTemplate(envFile, ref.TemplateID)
	if err != nil {
		return nil, err
	}
	removed := *target

	kept := make([]model.CategoryTemplate, 0, len(envFile.CategoryTemplates))
	for i := range envFile.CategoryTemplates {
		if &envFile.CategoryTemplates[i] != target {
			kept = append(kept, envFile.CategoryTemplates[i])
		}
	}
	envFile.CategoryTemplates = kept
	project.Touch(now())

	if err := s.save(); err != nil {
		return nil, err
	}
	logTemplateChange("template-remove", project, envFile, removed)
	return &removed, nil
}

// ListCategoryTemplates returns the templates saved on an env file.
func ListCategoryTemplates(ctx context.Context, projectID, envFileRef string) ([]model.CategoryTemplate, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	project, err := s.project(projectID)
	if err != nil {
		return nil, err
	}
	envFile, err := findEnvFile(project, envFileRef)
	if err != nil {
		return nil, err
	}
	if envFile.CategoryTemplates == nil {
		return []model.CategoryTemplate{}, nil
	}
	return envFile.CategoryTemplates, nil
}

func findTemplate(envFile *model.EnvFile, ref string) (*model.CategoryTemplate, error) {
	template, ok := envFile.FindTemplate(ref)
	if !ok {
		return nil, fmt.Errorf("template %q in %s: %w", ref, envFile.Name, kerrors.ErrTemplateNotFound)
	}
	return template, nil
}

// templateVariables turns a template's keys into empty variables.
func templateVariables(template *model.CategoryTemplate) []model.EnvVariable {
	vars := make([]model.EnvVariable, 0, len(template.Keys))
	for _, key := range template.Keys {
		vars = append(vars, model.EnvVariable{Key: key})
	}
	return vars
}

// cleanKeys trims keys and drops blanks and repeats, keeping order.
func cleanKeys(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, k)
	}
	return result
}

func logTemplateChange(operation string, project *model.Project, envFile *model.EnvFile, template model.CategoryTemplate) {
	entry := audit.LogWithUser(operation)
	entry.ProjectID = project.ID
	entry.ProjectName = project.Name
	entry.EnvFile = envFile.Path
	entry.TemplateName = template.Name
	audit.Log(entry)
}
