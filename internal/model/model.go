// Package model defines the persisted project store: projects, their env
// files and the configuration groups saved for each env file.
//
// The JSON layout matches the exported default.json of earlier releases, so
// exports can be re-imported unchanged.
package model

import "time"

// DefaultGroupID is the id given to the group created from an env file's own
// content when a project is added.
const DefaultGroupID = "default"

// DefaultGroupName is the display name of that group.
const DefaultGroupName = "Default"

type Project struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Path         string    `json:"path" yaml:"path"`
	EnvFiles     []EnvFile `json:"env_files" yaml:"env_files"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

type EnvFile struct {
	Name              string             `json:"name" yaml:"name"`
	Path              string             `json:"path" yaml:"path"`
	Content           string             `json:"content,omitempty" yaml:"content,omitempty"`
	Groups            []EnvGroup         `json:"groups" yaml:"groups"`
	CategoryTemplates []CategoryTemplate `json:"categoryTemplates,omitempty" yaml:"categoryTemplates,omitempty"`
}

type EnvGroup struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string        `json:"category,omitempty" yaml:"category,omitempty"`
	Variables   []EnvVariable `json:"variables" yaml:"variables"`
}

type EnvVariable struct {
	Key         string   `json:"key" yaml:"key"`
	Value       string   `json:"value" yaml:"value"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// CategoryTemplate lists the variable keys that belong to a category.
type CategoryTemplate struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keys        []string `json:"keys" yaml:"keys"`
}

// FindEnvFile returns the env file whose path equals ref, falling back to
// the first env file whose name equals ref.
func (p *Project) FindEnvFile(ref string) (*EnvFile, bool) {
	for i := range p.EnvFiles {
		if p.EnvFiles[i].Path == ref {
			return &p.EnvFiles[i], true
		}
	}
	for i := range p.EnvFiles {
		if p.EnvFiles[i].Name == ref {
			return &p.EnvFiles[i], true
		}
	}
	return nil, false
}

// FindGroup returns the group with the given id, falling back to the first
// group whose name equals ref.
func (e *EnvFile) FindGroup(ref string) (*EnvGroup, bool) {
	for i := range e.Groups {
		if e.Groups[i].ID == ref {
			return &e.Groups[i], true
		}
	}
	for i := range e.Groups {
		if e.Groups[i].Name == ref {
			return &e.Groups[i], true
		}
	}
	return nil, false
}

// FindTemplate returns the category template with the given id, falling
// back to the first template whose name equals ref.
func (e *EnvFile) FindTemplate(ref string) (*CategoryTemplate, bool) {
	for i := range e.CategoryTemplates {
		if e.CategoryTemplates[i].ID != "" && e.CategoryTemplates[i].ID == ref {
			return &e.CategoryTemplates[i], true
		}
	}
	for i := range e.CategoryTemplates {
		if e.CategoryTemplates[i].Name == ref {
			return &e.CategoryTemplates[i], true
		}
	}
	return nil, false
}

// Touch records a modification.
func (p *Project) Touch(now time.Time) {
	p.LastModified = now.UTC()
}

// VariableMap returns the group's variables as a map. Later keys win.
func (g EnvGroup) VariableMap() map[string]string {
	vars := make(map[string]string, len(g.Variables))
	for _, v := range g.Variables {
		vars[v.Key] = v.Value
	}
	return vars
}
