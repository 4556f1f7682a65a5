// Package ui provides semantic text formatting for envtray's CLI output.
//
// Formatters render with color on capable terminals and fall back to plain
// text decorations when NO_COLOR is set or the output is not a TTY.
//
//	ui.Code.Sprint("envtray project add .")   // Commands
//	ui.Path.Sprint("/srv/app/.env")            // File paths
//	ui.Token.Sprint("tray-config:p1:/a:g1")   // Tray menu tokens
//	ui.Highlight.Sprint("Production")          // Project and group names
//	ui.Muted.Sprint("3 groups")                // Secondary text
//
// Without color, Code uses `backticks`, Token and Highlight use 'quotes' and
// Muted uses (parentheses). The status marks (SuccessMark, ErrorMark, ...)
// are pre-rendered prefixes for spinner final messages.
package ui
