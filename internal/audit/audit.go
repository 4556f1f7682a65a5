package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/envtray/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // OS user performing the action.
	Operation string `json:"op"`

	// Optional fields depending on operation.
	ProjectID    string `json:"project_id,omitempty"`
	ProjectName  string `json:"project_name,omitempty"`
	ProjectPath  string `json:"project_path,omitempty"`
	EnvFile      string `json:"env_file,omitempty"`      // For apply and group changes.
	GroupID      string `json:"group_id,omitempty"`      // For apply and group changes.
	GroupName    string `json:"group_name,omitempty"`    // For apply and group changes.
	TemplateName string `json:"template_name,omitempty"` // For template changes.
	Source       string `json:"source,omitempty"`        // "cli" or "tray" for apply.
	OutputPath   string `json:"output_path,omitempty"`   // For export.
	InputPath    string `json:"input_path,omitempty"`    // For import.
	Count        int    `json:"count,omitempty"`         // Projects exported or imported.
	SkippedCount int    `json:"skipped_count,omitempty"` // For import.
}

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Log appends an entry to the audit log.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampLayout)
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the user filled in.
func LogWithUser(op string) Entry {
	entry := Entry{Operation: op}
	if configs.UserEnvtraySettings != nil {
		entry.User = configs.UserEnvtraySettings.Username
	}
	return entry
}

// LogPath returns the path to the audit log file, or "" when settings are
// not initialised.
func LogPath() string {
	if configs.UserEnvtraySettings == nil {
		return ""
	}
	return configs.UserEnvtraySettings.AuditPath
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}
