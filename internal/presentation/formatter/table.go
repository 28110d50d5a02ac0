package formatter

import (
	"fmt"
	"strings"

	"github.com/convoview/go-convo-monitor/internal/util"
)

type TableFormatter struct {
	headers []string
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{
			"Conversation", "Session", "State", "Caller", "Dialed",
			"Segments", "Summaries", "Last Offset",
		},
	}
}

func (f *TableFormatter) Format(rows []ConversationRow) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, f.record(row))
	}

	widths := f.calculateColumnWidths(records)

	f.printBorder(widths, "┌", "┬", "┐")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "├", "┼", "┤")
	for _, record := range records {
		f.printRow(record, widths)
	}
	f.printBorder(widths, "└", "┴", "┘")

	fmt.Printf("\n%d conversations\n", len(rows))
	return nil
}

func (f *TableFormatter) record(row ConversationRow) []string {
	state := "ended"
	if row.Active {
		state = "active"
	}
	return []string{
		row.ID,
		row.SessionID,
		state,
		row.Caller,
		row.Dialed,
		fmt.Sprintf("%d", row.TranscriptCount),
		fmt.Sprintf("%d", row.SummaryCount),
		util.FormatStreamOffset(row.LastOffset),
	}
}

func (f *TableFormatter) calculateColumnWidths(records [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, record := range records {
		for i, cell := range record {
			if w := util.GetDisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (f *TableFormatter) printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = util.PadString(cell, widths[i], true)
	}
	fmt.Println("│ " + strings.Join(parts, " │ ") + " │")
}

func (f *TableFormatter) printBorder(widths []int, left, middle, right string) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2)
	}
	fmt.Println(left + strings.Join(parts, middle) + right)
}
