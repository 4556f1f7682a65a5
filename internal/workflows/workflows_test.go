package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PolarWolf314/envtray/internal/configs"
	"github.com/PolarWolf314/envtray/internal/model"
	"github.com/PolarWolf314/envtray/internal/store"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

// testEnv isolates the configuration directory, the clock and id generation.
type testEnv struct {
	settings *configs.UserSettings
	home     string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	settings := configs.NewUserSettings(filepath.Join(home, ".config", "envtray"))
	settings.HomeDir = home

	originalSettings := configs.UserEnvtraySettings
	originalNow := now
	originalID := newID
	configs.UserEnvtraySettings = settings

	counter := 0
	now = func() time.Time { return fixedNow }
	newID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	t.Cleanup(func() {
		configs.UserEnvtraySettings = originalSettings
		now = originalNow
		newID = originalID
	})

	return &testEnv{settings: settings, home: home}
}

func (e *testEnv) projects(t *testing.T) []model.Project {
	t.Helper()
	projects, err := store.Load(e.settings.StorePath)
	require.NoError(t, err)
	return projects
}

func (e *testEnv) seed(t *testing.T, projects ...model.Project) {
	t.Helper()
	require.NoError(t, store.Save(e.settings.StorePath, projects))
}

// makeProject creates a project directory with the given env files.
func makeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "app")
	require.NoError(t, os.Mkdir(root, 0700))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0600))
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

var ctx = context.Background()
