// Package terminal reports what the attached terminal can do.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether f is a terminal.
// Spinners and cursor control are only used when this is true.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

