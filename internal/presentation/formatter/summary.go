package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/convoview/go-convo-monitor/internal/util"
)

// SummaryFormatter is responsible for formatting and outputting an aggregate
// report over the conversation list.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

// Format outputs the aggregate report.
func (f *SummaryFormatter) Format(rows []ConversationRow) error {
	var active, segments, summaries int
	var totalSeconds, longest float64

	for _, row := range rows {
		if row.Active {
			active++
		}
		segments += row.TranscriptCount
		summaries += row.SummaryCount
		totalSeconds += row.LastOffset
		if row.LastOffset > longest {
			longest = row.LastOffset
		}
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Conversation Summary Report")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	fmt.Printf("Total Conversations:  %d\n", len(rows))
	fmt.Printf("Active:               %d\n", active)
	fmt.Printf("Ended:                %d\n", len(rows)-active)
	fmt.Println()

	fmt.Printf("Transcript Segments:  %d\n", segments)
	fmt.Printf("Summaries:            %d\n", summaries)
	fmt.Println()

	fmt.Printf("Captured Audio:       %s\n", util.FormatDuration(time.Duration(totalSeconds)*time.Second))
	fmt.Printf("Longest Conversation: %s\n", util.FormatStreamOffset(longest))
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))

	return nil
}
