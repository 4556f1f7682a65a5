package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/utils"
)

// DefaultExportFile is the file name used when every project is exported.
const DefaultExportFile = "default.json"

const exportTimestampLayout = "20060102_150405"

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// OutputDir is the destination directory. If empty, the export dir from
	// config.toml is used.
	OutputDir string

	// ProjectID limits the export to one project. The file is then named
	// <name>_<YYYYMMDD_HHMMSS>.json and holds {"project": {...}}.
	ProjectID string
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	OutputPath   string
	ProjectCount int
}

// singleProjectExport is the document written for a one-project export.
type singleProjectExport struct {
	Project model.Project `json:"project"`
}

// Export writes projects to a JSON file that Import accepts.
//
// Returns ErrNoProjects when exporting everything from an empty store.
// Returns ErrProjectNotFound if ProjectID is set and unknown.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = s.config.Export.Dir
	}

	var (
		payload  any
		fileName string
		count    int
	)
	if opts.ProjectID != "" {
		project, err := s.project(opts.ProjectID)
		if err != nil {
			return nil, err
		}
		payload = singleProjectExport{Project: *project}
		fileName = fmt.Sprintf("%s_%s.json", utils.SanitizeFileName(project.Name), now().Format(exportTimestampLayout))
		count = 1
	} else {
		if len(s.projects) == 0 {
			return nil, kerrors.ErrNoProjects
		}
		payload = s.projects
		fileName = DefaultExportFile
		count = len(s.projects)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}

	outputPath := filepath.Join(dir, fileName)
	if err := gateway.WriteTextFileAll(outputPath, string(data)+"\n"); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser("export")
	entry.ProjectID = opts.ProjectID
	entry.OutputPath = outputPath
	entry.Count = count
	audit.Log(entry)

	return &ExportResult{OutputPath: outputPath, ProjectCount: count}, nil
}
