// Package audit records envtray operations in an append-only log.
//
// Every operation that changes the store or a project's files (add,
// refresh, remove, group changes, apply, export, import) is recorded so a
// user can see which configuration was written to which env file, and when.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) next to
// the store:
//
//	<config dir>/envtray/audit.jsonl
//
// # Usage
//
//	entry := audit.LogWithUser("apply")
//	entry.ProjectID = project.ID
//	entry.EnvFile = envFile.Path
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. An operation never fails because its entry
// could not be written.
//
// # Reading Logs
//
// ReadEntries parses the log for display. Malformed lines are skipped to
// tolerate partial writes.
package audit
