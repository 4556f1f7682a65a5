package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envtray/internal/store"
)

func TestProjectLifecycle(t *testing.T) {
	settings := setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})

	output := mustRunCLI(t, "project", "add", root)
	if !strings.Contains(output, "Registered 'app'") {
		t.Errorf("Expected registration message, got: %s", output)
	}
	if !strings.Contains(output, "1 env file:") {
		t.Errorf("Expected env file count, got: %s", output)
	}

	projects, err := store.Load(settings.StorePath)
	if err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	if len(projects) != 1 || projects[0].Path != root {
		t.Fatalf("Expected one project at %s, got %+v", root, projects)
	}

	output = mustRunCLI(t, "project", "list")
	if !strings.Contains(output, "'app'") || !strings.Contains(output, "1 env file, 1 group") {
		t.Errorf("Unexpected list output: %s", output)
	}

	if err := os.WriteFile(filepath.Join(root, ".env.local"), []byte("L=1\n"), 0600); err != nil {
		t.Fatalf("Failed to write .env.local: %v", err)
	}
	output = mustRunCLI(t, "project", "refresh", "app")
	if !strings.Contains(output, "Added:") || !strings.Contains(output, ".env.local") {
		t.Errorf("Expected .env.local to be added, got: %s", output)
	}

	output = mustRunCLI(t, "project", "remove", "app")
	if !strings.Contains(output, "Removed 'app'") {
		t.Errorf("Expected removal message, got: %s", output)
	}
	output = mustRunCLI(t, "project", "list")
	if !strings.Contains(output, "No projects registered.") {
		t.Errorf("Expected empty list, got: %s", output)
	}
}

func TestProjectAddTwice(t *testing.T) {
	setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})

	mustRunCLI(t, "project", "add", root)
	output, err := runCLI(t, "project", "add", root)
	if err != nil {
		t.Fatalf("Expected a message rather than an error, got: %v", err)
	}
	if !strings.Contains(output, "already registered") {
		t.Errorf("Expected duplicate warning, got: %s", output)
	}
}

func TestProjectAddMissingDirectory(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "project", "add", filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Expected a message rather than an error, got: %v", err)
	}
	if !strings.Contains(output, "does not exist") {
		t.Errorf("Expected missing path message, got: %s", output)
	}
}

func TestProjectUnknownReference(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "project", "refresh", "nope")
	if err != nil {
		t.Fatalf("Expected a message rather than an error, got: %v", err)
	}
	if !strings.Contains(output, "project not found") || !strings.Contains(output, "envtray project list") {
		t.Errorf("Expected not-found hint, got: %s", output)
	}
}

func TestProjectMoveAndScan(t *testing.T) {
	setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})
	mustRunCLI(t, "project", "add", root)

	newRoot := createProjectDir(t, map[string]string{".env": "A=1\n", ".env.test": "T=1\n"})
	output := mustRunCLI(t, "project", "move", "app", newRoot)
	if !strings.Contains(output, "Moved 'app'") {
		t.Errorf("Expected move message, got: %s", output)
	}

	output = mustRunCLI(t, "project", "scan", newRoot)
	if !strings.Contains(output, ".env.test") {
		t.Errorf("Expected .env.test in scan output, got: %s", output)
	}
}

func TestProjectSaveConfig(t *testing.T) {
	setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})
	mustRunCLI(t, "project", "add", root)

	output := mustRunCLI(t, "project", "save-config", "app")
	if !strings.Contains(output, "Saved 1 preset") {
		t.Errorf("Expected preset count, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(root, ".hold-config.json")); err != nil {
		t.Errorf("Expected .hold-config.json to be written: %v", err)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		noun string
		want string
	}{
		{1, "project", "1 project"},
		{2, "project", "2 projects"},
		{0, "category", "0 categories"},
		{1200, "variable", "1,200 variables"},
		{3, "key", "3 keys"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, tt.noun); got != tt.want {
			t.Errorf("plural(%d, %q) = %q, want %q", tt.n, tt.noun, got, tt.want)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	settings := setupTestEnvironment(t)

	output := mustRunCLI(t, "config", "show")
	if !strings.Contains(output, "not created") || !strings.Contains(output, `default_category = "Uncategorized"`) {
		t.Errorf("Expected defaults, got: %s", output)
	}

	output = mustRunCLI(t, "config", "init")
	if !strings.Contains(output, "Wrote") {
		t.Errorf("Expected write message, got: %s", output)
	}
	if _, err := os.Stat(settings.ConfigPath); err != nil {
		t.Fatalf("Expected config.toml to exist: %v", err)
	}

	output = mustRunCLI(t, "config", "init")
	if !strings.Contains(output, "already exists") {
		t.Errorf("Expected refusal without --force, got: %s", output)
	}
	mustRunCLI(t, "config", "init", "--force")
}
