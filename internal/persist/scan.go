package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	kerrors "github.com/PolarWolf314/envtray/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// EnvFileNames is the recognition set, in display order.
var EnvFileNames = []string{
	".env",
	".env.local",
	".env.development",
	".env.production",
	".env.test",
}

const envFilePattern = "{.env,.env.local,.env.development,.env.production,.env.test}"

// EnvFile is an env file found in a project root.
type EnvFile struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ScanEnvFiles returns the recognised env files that exist directly under
// root, in EnvFileNames order. Directories and unreadable files are skipped.
func ScanEnvFiles(root string) ([]EnvFile, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return nil, fmt.Errorf("%s: %w", root, kerrors.ErrProjectPathNotFound)
	}
	if err != nil {
		return nil, &IOError{Op: "stat", Path: root, Err: err}
	}

	matches, err := doublestar.Glob(os.DirFS(root), envFilePattern)
	if err != nil {
		return nil, fmt.Errorf("matching env files in %s: %w", root, err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return rank(matches[i]) < rank(matches[j])
	})

	files := make([]EnvFile, 0, len(matches))
	for _, name := range matches {
		path := filepath.Join(root, name)
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			continue
		}
		content, err := ReadTextFile(path)
		if err != nil {
			continue
		}
		files = append(files, EnvFile{Name: name, Path: path, Content: content})
	}
	return files, nil
}

func rank(name string) int {
	for i, n := range EnvFileNames {
		if n == name {
			return i
		}
	}
	return len(EnvFileNames)
}
