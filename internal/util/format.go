package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration as "1h 23m" or "23m".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// ChannelLabel maps an AudioHook channel index to its conventional role.
// Channel 0 carries the external party, channel 1 the internal one.
func ChannelLabel(channel *int) string {
	if channel == nil {
		return "unknown"
	}
	switch *channel {
	case 0:
		return "customer"
	case 1:
		return "agent"
	default:
		return fmt.Sprintf("channel-%d", *channel)
	}
}

// WrapText wraps text on word boundaries to fit within the given display width.
func WrapText(text string, width int) []string {
	if text == "" {
		return []string{}
	}
	if GetDisplayWidth(text) <= width {
		return []string{text}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case GetDisplayWidth(currentLine)+1+GetDisplayWidth(word) <= width:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}
