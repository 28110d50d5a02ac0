package util

import (
	"math"
	"strconv"
	"strings"
)

// StreamEndSentinel is the literal offset the backend emits for the final
// summary of a conversation, meaning "the very end of the stream".
const StreamEndSentinel = "end"

// ParseStreamOffset converts an ISO-8601 duration stamp ("PT12.5S") into
// seconds. The sentinel "end" parses as +Inf so it orders after every real
// offset. Malformed input degrades to 0 rather than failing: offsets drive
// ordering during rendering and must never abort a refresh cycle.
func ParseStreamOffset(value string) float64 {
	if value == StreamEndSentinel {
		return math.Inf(1)
	}

	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "PT")
	trimmed = strings.TrimSuffix(trimmed, "S")

	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return seconds
}

// FormatStreamOffset renders a parsed offset for display as m:ss.s.
// Infinite offsets render as the sentinel itself.
func FormatStreamOffset(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return StreamEndSentinel
	}
	// Round to the displayed precision first so a remainder like 59.96
	// carries into the minutes column instead of printing as 60.0.
	rounded := math.Round(seconds*10) / 10
	minutes := int(rounded) / 60
	rem := rounded - float64(minutes*60)
	return strconv.Itoa(minutes) + ":" + pad2(rem)
}

func pad2(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'f', 1, 64)
	if seconds < 10 {
		return "0" + s
	}
	return s
}
