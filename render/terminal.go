package render

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth reports the column count of f, or fallback when f is not a
// terminal or its size cannot be read.
func TerminalWidth(f *os.File, fallback int) int {
	if !IsTerminal(f) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// LineWidth subtracts the margin from a terminal width, never going below 1.
func LineWidth(width, margin int) int {
	return max(width-margin, 1)
}
