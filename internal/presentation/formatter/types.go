package formatter

// ConversationRow is one conversation flattened for report output.
type ConversationRow struct {
	ID              string  `json:"id"`
	SessionID       string  `json:"session_id"`
	Active          bool    `json:"active"`
	Caller          string  `json:"caller"`
	Dialed          string  `json:"dialed"`
	TranscriptCount int     `json:"transcript_count"`
	SummaryCount    int     `json:"summary_count"`
	LastOffset      float64 `json:"last_offset_seconds"`
}

// Formatter renders conversation rows to stdout.
type Formatter interface {
	Format(rows []ConversationRow) error
}

// New returns the formatter for the requested output format, defaulting to
// the table.
func New(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "csv":
		return NewCSVFormatter()
	case "summary":
		return NewSummaryFormatter()
	default:
		return NewTableFormatter()
	}
}
