package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/envtray/internal/audit"
	kerrors "github.com/PolarWolf314/envtray/internal/errors"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool

	// User filters entries by OS user name.
	User string

	// Project filters entries by project id or name.
	Project string

	// Operations filters entries by operation types (comma-separated).
	Operations string

	// Since filters entries after this date (YYYY-MM-DD format).
	Since string

	// Until filters entries before this date (YYYY-MM-DD format).
	Until string
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	// Entries are the filtered audit log entries.
	Entries []audit.Entry

	// TotalEntriesBeforeFilter is the count of entries before filtering.
	TotalEntriesBeforeFilter int
}

// Log reads and filters the audit log.
//
// Returns ErrNoAuditLog if nothing has been recorded yet.
// Returns ErrInvalidDateFormat if a date filter is not YYYY-MM-DD.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logPath := audit.LogPath()
	if logPath == "" {
		return nil, kerrors.ErrNoAuditLog
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, kerrors.ErrNoAuditLog
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	entries, err := audit.ParseEntries(data)
	if err != nil {
		return nil, fmt.Errorf("parsing audit log: %w", err)
	}

	result := &LogResult{
		TotalEntriesBeforeFilter: len(entries),
	}

	if len(entries) == 0 {
		result.Entries = entries
		return result, nil
	}

	var keep []entryFilter
	if opts.User != "" {
		keep = append(keep, func(e audit.Entry) bool { return strings.EqualFold(e.User, opts.User) })
	}
	if opts.Project != "" {
		keep = append(keep, func(e audit.Entry) bool {
			return e.ProjectID == opts.Project || strings.EqualFold(e.ProjectName, opts.Project)
		})
	}
	if opts.Operations != "" {
		ops := make(map[string]bool)
		for _, op := range strings.Split(opts.Operations, ",") {
			ops[strings.ToLower(strings.TrimSpace(op))] = true
		}
		keep = append(keep, func(e audit.Entry) bool { return ops[strings.ToLower(e.Operation)] })
	}
	if opts.Since != "" {
		since, err := parseDay("--since", opts.Since)
		if err != nil {
			return nil, err
		}
		keep = append(keep, stampedWithin(func(t time.Time) bool { return !t.Before(since) }))
	}
	if opts.Until != "" {
		until, err := parseDay("--until", opts.Until)
		if err != nil {
			return nil, err
		}
		// Until is inclusive of the whole day.
		until = until.Add(24*time.Hour - time.Nanosecond)
		keep = append(keep, stampedWithin(func(t time.Time) bool { return !t.After(until) }))
	}

	filtered := make([]audit.Entry, 0, len(entries))
	for _, e := range entries {
		if matchesAll(e, keep) {
			filtered = append(filtered, e)
		}
	}

	if opts.Reverse {
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	}

	// Limit always keeps the most recent entries.
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		if opts.Reverse {
			filtered = filtered[:opts.Limit]
		} else {
			filtered = filtered[len(filtered)-opts.Limit:]
		}
	}

	result.Entries = filtered
	return result, nil
}

type entryFilter func(audit.Entry) bool

func matchesAll(e audit.Entry, filters []entryFilter) bool {
	for _, f := range filters {
		if !f(e) {
			return false
		}
	}
	return true
}

// stampedWithin wraps a time predicate. Entries with an unreadable timestamp
// never match a date filter.
func stampedWithin(ok func(time.Time) bool) entryFilter {
	return func(e audit.Entry) bool {
		t, parsed := parseTimestamp(e.Timestamp)
		return parsed && ok(t)
	}
}

func parseDay(flag, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s date format invalid, use YYYY-MM-DD", kerrors.ErrInvalidDateFormat, flag)
	}
	return t, nil
}

// parseTimestamp accepts the audit layout and plain RFC 3339.
func parseTimestamp(ts string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02T15:04:05.000000Z", ts)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
	}
	return t, err == nil
}

// FormatDate formats a timestamp string to YYYY-MM-DD format.
func FormatDate(ts string) string {
	t, ok := parseTimestamp(ts)
	if !ok {
		if len(ts) >= 10 {
			return ts[:10]
		}
		return ts
	}
	return t.Format("2006-01-02")
}

// FormatDateTime formats a timestamp string to YYYY-MM-DD HH:MM:SS format.
func FormatDateTime(ts string) string {
	t, ok := parseTimestamp(ts)
	if !ok {
		if len(ts) >= 19 {
			return ts[:19]
		}
		return ts
	}
	return t.Format("2006-01-02 15:04:05")
}

// FormatDetails formats the details for a log entry in verbose format.
func FormatDetails(e audit.Entry) string {
	switch e.Operation {
	case "add", "move":
		return fmt.Sprintf("%s (%s)", e.ProjectName, e.ProjectPath)
	case "apply":
		detail := fmt.Sprintf("%s -> %s in %s", e.GroupName, e.EnvFile, e.ProjectName)
		if e.Source != "" {
			detail += " via " + e.Source
		}
		return detail
	case "group-add", "group-update", "group-remove":
		return fmt.Sprintf("%s on %s in %s", e.GroupName, e.EnvFile, e.ProjectName)
	case "template-add", "template-update", "template-remove":
		return fmt.Sprintf("template %s on %s in %s", e.TemplateName, e.EnvFile, e.ProjectName)
	case "export", "save-config":
		if e.Count > 0 {
			return fmt.Sprintf("%d projects to %s", e.Count, e.OutputPath)
		}
		return e.OutputPath
	case "import":
		return fmt.Sprintf("%d imported, %d skipped from %s", e.Count, e.SkippedCount, e.InputPath)
	default:
		return e.ProjectName
	}
}

// FormatDetailsOneline formats the details for a log entry in oneline format.
func FormatDetailsOneline(e audit.Entry) string {
	switch e.Operation {
	case "apply", "group-add", "group-update", "group-remove":
		return e.GroupName
	case "template-add", "template-update", "template-remove":
		return e.TemplateName
	case "export":
		return fmt.Sprintf("%d projects", e.Count)
	case "import":
		return fmt.Sprintf("%d imported", e.Count)
	case "save-config":
		return e.OutputPath
	default:
		return e.ProjectName
	}
}
