package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
	ColorBold   = "\033[1m"

	ClearScreen       = "\033[2J"     // Clear entire screen
	ClearLine         = "\033[2K"     // Clear entire line
	ClearScrollback   = "\033[3J"     // Clear scrollback buffer
	ClearToScreenEnd  = "\033[J"      // Clear from cursor to end of screen
	ResetScrollRegion = "\033[r"      // Reset scroll region
	DisableScrollback = "\033[?1007h" // Disable scrollback
	EnableScrollback  = "\033[?1007l" // Enable scrollback
	MoveCursorHome    = "\033[H"      // Move cursor to home position
	SaveCursor        = "\033[s"      // Save cursor position
	RestoreCursor     = "\033[u"      // Restore cursor position
	HideCursor        = "\033[?25l"   // Hide cursor
	ShowCursor        = "\033[?25h"   // Show cursor
	EnterAltScreen    = "\033[?1049h" // Switch to alternate screen buffer
	ExitAltScreen     = "\033[?1049l" // Return to normal screen buffer
)

// GetDisplayWidth calculates the actual display width of a string, accounting
// for wide runes and emojis.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads a string to a specific display width.
func PadString(s string, width int, leftAlign bool) string {
	actual := GetDisplayWidth(s)
	if actual >= width {
		return s
	}
	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// TruncateString cuts a string to the given display width, appending an
// ellipsis when anything was removed.
func TruncateString(s string, width int) string {
	if GetDisplayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// CenterText centers text within the given width.
func CenterText(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return TruncateString(text, width)
	}
	padding := (width - w) / 2
	return fmt.Sprintf("%s%s%s", strings.Repeat(" ", padding), text, strings.Repeat(" ", width-padding-w))
}

// MoveCursor returns the ANSI sequence to move the cursor to a position.
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// FormatSectionSeparator creates a visual separator line of the given width.
func FormatSectionSeparator(width int) string {
	return fmt.Sprintf("%s%s%s", ColorCyan, strings.Repeat("─", width), ColorReset)
}
