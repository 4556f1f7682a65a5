package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envtray/internal/workflows"
)

func TestExportAndImport(t *testing.T) {
	setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})
	mustRunCLI(t, "project", "add", root)

	outDir := t.TempDir()
	output := mustRunCLI(t, "export", "-o", outDir)
	if !strings.Contains(output, "Exported 1 project") {
		t.Errorf("Expected export message, got: %s", output)
	}
	exportPath := filepath.Join(outDir, workflows.DefaultExportFile)
	if _, err := os.Stat(exportPath); err != nil {
		t.Fatalf("Expected %s to exist: %v", exportPath, err)
	}

	// Re-importing into the same store skips the known path.
	output = mustRunCLI(t, "import", exportPath)
	if !strings.Contains(output, "Imported 0 projects") || !strings.Contains(output, "Skipped 1 project") {
		t.Errorf("Expected the project to be skipped, got: %s", output)
	}

	setupTestEnvironment(t)
	output = mustRunCLI(t, "import", exportPath, "--dry-run")
	if !strings.Contains(output, "Would import 1 project") {
		t.Errorf("Expected dry run message, got: %s", output)
	}
	output = mustRunCLI(t, "project", "list")
	if !strings.Contains(output, "No projects registered.") {
		t.Errorf("Dry run must not save, got: %s", output)
	}

	mustRunCLI(t, "import", exportPath)
	output = mustRunCLI(t, "project", "list")
	if !strings.Contains(output, "'app'") {
		t.Errorf("Expected imported project, got: %s", output)
	}
}

func TestExportEmptyStore(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "export", "-o", t.TempDir())
	if err != nil {
		t.Fatalf("Expected a message rather than an error, got: %v", err)
	}
	if !strings.Contains(output, "No projects registered") {
		t.Errorf("Expected empty store message, got: %s", output)
	}
}

func TestImportInvalidFile(t *testing.T) {
	setupTestEnvironment(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "x"}`), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	output, err := runCLI(t, "import", path)
	if err != nil {
		t.Fatalf("Expected a message rather than an error, got: %v", err)
	}
	if !strings.Contains(output, "does not contain a project list") {
		t.Errorf("Expected invalid import message, got: %s", output)
	}
}

func TestLogCommand(t *testing.T) {
	setupTestEnvironment(t)

	output := mustRunCLI(t, "log")
	if !strings.Contains(output, "No audit log found") {
		t.Errorf("Expected missing log message, got: %s", output)
	}

	root := createProjectDir(t, map[string]string{".env": "A=1\n"})
	mustRunCLI(t, "project", "add", root)
	mustRunCLI(t, "group", "apply", "app", ".env", "default")

	output = mustRunCLI(t, "log", "--oneline")
	if !strings.Contains(output, "testuser add") || !strings.Contains(output, "testuser apply") {
		t.Errorf("Expected add and apply entries, got: %s", output)
	}

	output = mustRunCLI(t, "log", "--operation", "apply", "--json")
	if strings.Contains(output, `"op": "add"`) || !strings.Contains(output, `"op": "apply"`) {
		t.Errorf("Expected only apply entries, got: %s", output)
	}

	output = mustRunCLI(t, "log", "--since", "yesterday")
	if !strings.Contains(output, "invalid date format") {
		t.Errorf("Expected date format error, got: %s", output)
	}
}

func TestVersionCommand(t *testing.T) {
	setupTestEnvironment(t)

	output := mustRunCLI(t, "version")
	if !strings.Contains(output, "envtray "+Version) {
		t.Errorf("Expected version line, got: %s", output)
	}

	// Development builds never contact GitHub.
	output = mustRunCLI(t, "version", "--check")
	if !strings.Contains(output, "Development build") {
		t.Errorf("Expected development build notice, got: %s", output)
	}
}

func TestImportFromStdin(t *testing.T) {
	setupTestEnvironment(t)

	stdin, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := stdin.WriteString(`[{"id":"p9","name":"piped","path":"/srv/piped"}]`); err != nil {
		t.Fatal(err)
	}
	if _, err := stdin.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	originalStdin := os.Stdin
	os.Stdin = stdin
	t.Cleanup(func() { os.Stdin = originalStdin })

	output := mustRunCLI(t, "import", "-")
	if !strings.Contains(output, "Imported 1 project") || !strings.Contains(output, "piped") {
		t.Errorf("Expected the piped project, got: %s", output)
	}
}
