// Package store loads and saves the application-wide project list.
//
// The store is a single JSON file holding a top-level array of projects.
// A missing file is an empty store. Saves go through a temporary file in the
// same directory followed by a rename, so the tray's file watcher never
// observes a half-written store.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/PolarWolf314/envtray/internal/model"
)

// Load reads the project list at path.
func Load(path string) ([]model.Project, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading project store: %w", err)
	}

	return Decode(data)
}

// Decode parses a serialized project list. Empty input is an empty list.
func Decode(data []byte) ([]model.Project, error) {
	projects := []model.Project{}
	if len(bytes.TrimSpace(data)) == 0 {
		return projects, nil
	}
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidStore, err)
	}
	return projects, nil
}

// Save writes the project list to path, creating parent directories.
func Save(path string, projects []model.Project) error {
	if projects == nil {
		projects = []model.Project{}
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding project store: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".projects-*.json")
	if err != nil {
		return fmt.Errorf("creating temporary store file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("writing project store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing project store: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing project store: %w", err)
	}
	return nil
}

// FindProject returns the project with the given id.
func FindProject(projects []model.Project, id string) (*model.Project, bool) {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], true
		}
	}
	return nil, false
}

// FindProjectByPath returns the project registered for a root directory.
func FindProjectByPath(projects []model.Project, path string) (*model.Project, bool) {
	clean := filepath.Clean(path)
	for i := range projects {
		if filepath.Clean(projects[i].Path) == clean {
			return &projects[i], true
		}
	}
	return nil, false
}
