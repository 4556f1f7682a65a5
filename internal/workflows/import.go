package workflows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/store"
	"github.com/PolarWolf314/envtray/internal/tray"
	"gopkg.in/yaml.v3"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Path is the file to import. With Input set it only names the source
	// in messages and the audit log.
	Path string

	// Input is read instead of Path when set, for example os.Stdin.
	Input io.Reader

	// DryRun reports what would be imported without saving.
	DryRun bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Imported []model.Project
	Skipped  []model.Project

	// RegeneratedIDs counts projects and groups whose id was missing or not
	// usable in a tray token and was replaced.
	RegeneratedIDs int
}

// importDocument covers the three accepted shapes besides a bare array.
type importDocument struct {
	Projects []model.Project `json:"projects" yaml:"projects"`
	Project  *model.Project  `json:"project" yaml:"project"`
}

// Import appends the projects of an export file to the store.
//
// The file may be JSON or YAML holding a project array, {"projects": [...]}
// or {"project": {...}}. Projects whose path is already registered, or that
// repeat a path earlier in the same file, are skipped. Missing or unsafe
// ids are replaced with fresh ones.
//
// Returns ErrInvalidImport if the file has none of the accepted shapes.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	var data []byte
	if opts.Input != nil {
		read, err := io.ReadAll(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", opts.Path, err)
		}
		data = read
	} else {
		content, err := gateway.ReadTextFile(opts.Path)
		if err != nil {
			return nil, err
		}
		data = []byte(content)
	}

	incoming, err := decodeImport(data, opts.Path)
	if err != nil {
		return nil, err
	}

	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, project := range incoming {
		if _, ok := store.FindProjectByPath(s.projects, project.Path); ok {
			result.Skipped = append(result.Skipped, project)
			continue
		}
		if _, ok := store.FindProjectByPath(result.Imported, project.Path); ok {
			result.Skipped = append(result.Skipped, project)
			continue
		}
		result.RegeneratedIDs += normalizeIDs(&project, s.projects, result.Imported)
		result.Imported = append(result.Imported, project)
	}

	if opts.DryRun || len(result.Imported) == 0 {
		return result, nil
	}

	s.projects = append(s.projects, result.Imported...)
	if err := s.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("import")
	entry.InputPath = opts.Path
	entry.Count = len(result.Imported)
	entry.SkippedCount = len(result.Skipped)
	audit.Log(entry)

	return result, nil
}

func decodeImport(data []byte, path string) ([]model.Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: file is empty", kerrors.ErrInvalidImport)
	}

	unmarshal := json.Unmarshal
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" || (trimmed[0] != '[' && trimmed[0] != '{') {
		unmarshal = yaml.Unmarshal
	}

	var list []model.Project
	if err := unmarshal(trimmed, &list); err == nil {
		return list, nil
	}

	var doc importDocument
	if err := unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidImport, err)
	}
	switch {
	case doc.Projects != nil:
		return doc.Projects, nil
	case doc.Project != nil:
		return []model.Project{*doc.Project}, nil
	}
	return nil, kerrors.ErrInvalidImport
}

// normalizeIDs replaces project and group ids that are empty, unsafe for
// tray tokens or already taken, and returns how many were replaced.
func normalizeIDs(project *model.Project, existing ...[]model.Project) int {
	replaced := 0

	taken := false
	for _, list := range existing {
		if _, ok := store.FindProject(list, project.ID); ok {
			taken = true
		}
	}
	if !tray.IsSafeIdentifier(project.ID) || taken {
		project.ID = newID()
		replaced++
	}

	for i := range project.EnvFiles {
		seen := make(map[string]bool)
		for j := range project.EnvFiles[i].Groups {
			group := &project.EnvFiles[i].Groups[j]
			if !tray.IsSafeIdentifier(group.ID) || seen[group.ID] {
				group.ID = newID()
				replaced++
			}
			seen[group.ID] = true
			if group.Variables == nil {
				group.Variables = []model.EnvVariable{}
			}
		}
	}
	return replaced
}
