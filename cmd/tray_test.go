package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/envtray/internal/tray"
	"github.com/PolarWolf314/envtray/internal/trayhost"
)

type recordingItem struct {
	title   string
	onClick func()
}

func (i *recordingItem) Disable()        {}
func (i *recordingItem) Click(fn func()) { i.onClick = fn }

type recordingTray struct {
	items []*recordingItem
	quit  bool
}

func (r *recordingTray) ResetMenu() { r.items = nil }

func (r *recordingTray) AddMenuItem(title, _ string) trayhost.MenuItem {
	item := &recordingItem{title: title}
	r.items = append(r.items, item)
	return item
}

func (r *recordingTray) AddSeparator() {}
func (r *recordingTray) Quit()         { r.quit = true }

func (r *recordingTray) click(t *testing.T, title string) {
	t.Helper()
	for _, item := range r.items {
		if item.title == title && item.onClick != nil {
			item.onClick()
			return
		}
	}
	t.Fatalf("No clickable item %q", title)
}

func TestTrayHostAppliesClickedGroup(t *testing.T) {
	setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})
	mustRunCLI(t, "project", "add", root)
	mustRunCLI(t, "group", "add", "app", ".env", "--name", "prod", "A=2")

	fake := &recordingTray{}
	host := newTrayHost(context.Background(), fake)
	if err := host.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	fake.click(t, tray.GroupIcon+"prod")
	data, err := os.ReadFile(filepath.Join(root, ".env"))
	if err != nil {
		t.Fatalf("Failed to read .env: %v", err)
	}
	if string(data) != "A=2\n" {
		t.Errorf("Expected applied group, got %q", string(data))
	}

	fake.click(t, tray.QuitLabel)
	if !fake.quit {
		t.Error("Expected Quit to stop the tray")
	}
}

func TestMenuCommand(t *testing.T) {
	setupTestEnvironment(t)
	root := createProjectDir(t, map[string]string{".env": "A=1\n"})
	mustRunCLI(t, "project", "add", root)
	mustRunCLI(t, "group", "add", "app", ".env", "--name", "local db", "--category", "database", "DB=1")

	output := mustRunCLI(t, "menu", "--tokens")
	for _, want := range []string{
		tray.ProjectIcon + "app",
		"  " + tray.EnvFileIcon + ".env",
		"    " + tray.CategoryIcon + "database",
		"      " + tray.GroupIcon + "local db",
		tray.ActionPrefix,
		tray.QuitLabel + " (" + tray.QuitToken + ")",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in menu output, got:\n%s", want, output)
		}
	}

	output = mustRunCLI(t, "menu", "--json")
	if !strings.Contains(output, `"kind": "separator"`) || !strings.Contains(output, `"token": "quit-app"`) {
		t.Errorf("Unexpected JSON menu: %s", output)
	}
}

func TestMenuCommandReportsInvalidStoreOnce(t *testing.T) {
	settings := setupTestEnvironment(t)
	if err := os.MkdirAll(filepath.Dir(settings.StorePath), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settings.StorePath, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := runCLI(t, "menu")
	if err != nil {
		t.Fatalf("Expected a message rather than an error, got: %v", err)
	}
	if strings.Count(output, "project store is invalid") != 1 {
		t.Errorf("Expected the error exactly once, got:\n%s", output)
	}
	if !strings.Contains(output, "move it aside") {
		t.Errorf("Expected a hint for the store file, got:\n%s", output)
	}
}
