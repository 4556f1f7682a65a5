package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/envtray/internal/configs"
)

func useTempSettings(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "envtray")

	original := configs.UserEnvtraySettings
	configs.UserEnvtraySettings = configs.NewUserSettings(dir)
	t.Cleanup(func() {
		configs.UserEnvtraySettings = original
	})

	return filepath.Join(dir, "audit.jsonl")
}

func TestLog_CreatesFileAndDirectory(t *testing.T) {
	logPath := useTempSettings(t)

	Log(Entry{User: "alice", Operation: "add", ProjectName: "web"})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	useTempSettings(t)

	Log(Entry{User: "alice", Operation: "add"})
	Log(Entry{User: "alice", Operation: "apply"})
	Log(Entry{User: "alice", Operation: "remove"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	ops := []string{"add", "apply", "remove"}
	for i, op := range ops {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	useTempSettings(t)

	Log(Entry{Operation: "export"})

	entries, err := ReadEntries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected one entry, got %d (err %v)", len(entries), err)
	}

	if _, err := time.Parse(timestampLayout, entries[0].Timestamp); err != nil {
		t.Errorf("Timestamp %q does not match layout: %v", entries[0].Timestamp, err)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	logPath := useTempSettings(t)

	Log(Entry{User: "alice", Operation: "remove", ProjectID: "p1"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &raw); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	for _, field := range []string{"env_file", "group_id", "output_path", "count"} {
		if _, ok := raw[field]; ok {
			t.Errorf("Expected %q to be omitted", field)
		}
	}
	if raw["project_id"] != "p1" {
		t.Errorf("Expected project_id p1, got %v", raw["project_id"])
	}
}

func TestLog_NoSettings(t *testing.T) {
	original := configs.UserEnvtraySettings
	configs.UserEnvtraySettings = nil
	defer func() {
		configs.UserEnvtraySettings = original
	}()

	// Must not panic.
	Log(Entry{Operation: "add"})

	if LogPath() != "" {
		t.Error("Expected empty log path without settings")
	}
}

func TestLogWithUser(t *testing.T) {
	useTempSettings(t)

	entry := LogWithUser("apply")
	if entry.Operation != "apply" {
		t.Errorf("Expected op apply, got %q", entry.Operation)
	}
	if entry.User != configs.UserEnvtraySettings.Username {
		t.Errorf("Expected user %q, got %q", configs.UserEnvtraySettings.Username, entry.User)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2024-01-01T00:00:00.000000Z","user":"a","op":"add"}
not json
{"ts":"2024-01-01T00:00:01.000000Z","user":"a","op":"apply","group_id":"g1"}

`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].GroupID != "g1" {
		t.Errorf("Expected group_id g1, got %q", entries[1].GroupID)
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	useTempSettings(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}
