package model

// TranscriptItem is one recognized speech segment within a conversation.
// Channel 0 is the external participant, channel 1 the internal one. Start
// and End are ISO-8601 duration offsets from the beginning of the stream
// ("PT12.5S"); End may be empty while recognition of the segment is pending.
type TranscriptItem struct {
	Channel *int   `json:"channel"`
	Text    string `json:"text"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// SummaryItem is a periodically generated synopsis covering transcript
// content up to TranscriptionEnd, which is either a duration offset or the
// literal sentinel "end" on the final summary of a conversation. Text may
// contain embedded newlines that are meaningful for display.
type SummaryItem struct {
	Text             string `json:"text"`
	TranscriptionEnd string `json:"transcription_end"`
}

// Conversation is the backend's view of one captured call. The monitor holds
// only a transient copy per refresh cycle and never writes it back.
type Conversation struct {
	ID         string           `json:"id"`
	SessionID  string           `json:"session_id"`
	Active     bool             `json:"active"`
	Ani        string           `json:"ani"`
	AniName    string           `json:"ani_name"`
	Dnis       string           `json:"dnis"`
	Position   string           `json:"position"`
	Transcript []TranscriptItem `json:"transcript"`
	Summary    []SummaryItem    `json:"summary"`
}

// ConversationsResponse is the body of GET /api/conversations.
type ConversationsResponse struct {
	Count         int            `json:"count"`
	Conversations []Conversation `json:"conversations"`
}

// InteractionState carries the keyboard-driven state of the dashboard.
type InteractionState struct {
	IsPaused    bool
	ShowHelp    bool
	SelectedIdx int
}
