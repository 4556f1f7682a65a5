package utils

import (
	"os"

	"golang.org/x/term"
)

// IsOutputTerminal returns true if stdout is a terminal. Spinners and
// colour only make sense when it is.
func IsOutputTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInputTerminal returns true if stdin is an interactive terminal rather
// than a pipe or a file.
func IsInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
