package layout

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the usable display width, with a fallback for
// non-terminal stdout.
func TerminalWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth < 40 {
		return 100
	}
	if termWidth > 160 {
		return 160
	}
	return termWidth
}
