package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/tray"
)

// TrayTree projects the store into the tray hierarchy. Groups are grouped by
// category in order of first appearance; groups without a category go to
// defaultCategory.
func TrayTree(projects []model.Project, defaultCategory string) []tray.Project {
	tree := make([]tray.Project, 0, len(projects))
	for _, p := range projects {
		node := tray.Project{
			ID:       p.ID,
			Name:     p.Name,
			EnvFiles: make([]tray.EnvFile, 0, len(p.EnvFiles)),
		}
		for _, f := range p.EnvFiles {
			node.EnvFiles = append(node.EnvFiles, tray.EnvFile{
				Name:       f.Name,
				Path:       f.Path,
				Categories: categorize(p.ID, f, defaultCategory),
			})
		}
		tree = append(tree, node)
	}
	return tree
}

func categorize(projectID string, f model.EnvFile, defaultCategory string) []tray.Category {
	var categories []tray.Category
	index := make(map[string]int)
	for _, g := range f.Groups {
		name := strings.TrimSpace(g.Category)
		if name == "" {
			name = defaultCategory
		}
		i, ok := index[name]
		if !ok {
			i = len(categories)
			index[name] = i
			categories = append(categories, tray.Category{Name: name})
		}
		categories[i].Groups = append(categories[i].Groups, tray.Group{
			ID:          g.ID,
			Name:        g.Name,
			ProjectID:   projectID,
			EnvFilePath: f.Path,
		})
	}
	return categories
}

// Tree loads the store and returns its tray projection using the configured
// default category.
func Tree(ctx context.Context) ([]tray.Project, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	return TrayTree(s.projects, s.config.Tray.DefaultCategory), nil
}
