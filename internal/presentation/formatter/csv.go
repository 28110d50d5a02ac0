package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(rows []ConversationRow) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	headers := []string{
		"Conversation", "Session", "Active", "Caller", "Dialed",
		"Segments", "Summaries", "Last Offset Seconds",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.ID,
			row.SessionID,
			fmt.Sprintf("%t", row.Active),
			row.Caller,
			row.Dialed,
			fmt.Sprintf("%d", row.TranscriptCount),
			fmt.Sprintf("%d", row.SummaryCount),
			fmt.Sprintf("%.1f", row.LastOffset),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return nil
}
