package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/core/timeline"
	"github.com/convoview/go-convo-monitor/internal/util"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	activeBadge   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("● live")
	endedBadge    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("○ ended")
	offsetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	agentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	customerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Italic(true)
)

// ExpansionStore is the expansion state the view consults per conversation.
type ExpansionStore interface {
	IsExpanded(id string) bool
}

// ConversationBlock is the rendered form of one conversation: a header line
// and, when expanded, the merged timeline body. Blocks are rebuilt from
// scratch on every refresh; nothing from a previous render survives.
type ConversationBlock struct {
	ID       string
	Header   string
	Body     []string
	Active   bool
	Expanded bool
}

// BuildDashboard produces one block per conversation, in the order the
// backend returned them. A conversation shows its body when the user
// expanded it or while it is still active; a collapse on an active
// conversation is honored as soon as it ends.
func BuildDashboard(conversations []model.Conversation, timelines map[string][]timeline.MergedEntry, store ExpansionStore, selectedIdx int, width int) []ConversationBlock {
	blocks := make([]ConversationBlock, 0, len(conversations))

	for i := range conversations {
		conv := &conversations[i]
		expanded := store.IsExpanded(conv.ID) || conv.Active

		block := ConversationBlock{
			ID:       conv.ID,
			Header:   buildHeader(conv, i == selectedIdx, expanded, width),
			Active:   conv.Active,
			Expanded: expanded,
		}
		if expanded {
			block.Body = buildBody(timelines[conv.ID], width)
		}
		blocks = append(blocks, block)
	}

	return blocks
}

func buildHeader(conv *model.Conversation, selected, expanded bool, width int) string {
	marker := "▸"
	if expanded {
		marker = "▾"
	}

	badge := endedBadge
	if conv.Active {
		badge = activeBadge
	}

	caller := conv.Ani
	if conv.AniName != "" {
		caller = fmt.Sprintf("%s (%s)", conv.AniName, conv.Ani)
	}

	title := fmt.Sprintf("%s %s  session %s", marker, conv.ID, conv.SessionID)
	if caller != "" {
		title += "  " + caller
	}
	if conv.Dnis != "" {
		title += " → " + conv.Dnis
	}

	style := headerStyle
	if selected {
		style = selectedStyle
		title = "» " + title
	}

	return style.Render(util.TruncateString(title, width-12)) + "  " + badge
}

func buildBody(entries []timeline.MergedEntry, width int) []string {
	var lines []string

	textWidth := width - 14
	if textWidth < 20 {
		textWidth = 20
	}

	for _, entry := range entries {
		switch entry.Kind {
		case timeline.KindTranscript:
			lines = append(lines, transcriptLines(entry.Transcript, textWidth)...)
		case timeline.KindSummary:
			lines = append(lines, summaryLines(entry.Summary, textWidth)...)
		}
	}

	return lines
}

func transcriptLines(item *model.TranscriptItem, width int) []string {
	offset := offsetStyle.Render(util.FormatStreamOffset(util.ParseStreamOffset(item.Start)))

	label := util.ChannelLabel(item.Channel)
	style := customerStyle
	if label == "agent" {
		style = agentStyle
	}

	wrapped := util.WrapText(item.Text, width)
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}

	lines := make([]string, 0, len(wrapped))
	lines = append(lines, fmt.Sprintf("  %s %s: %s", offset, style.Render(label), wrapped[0]))
	for _, cont := range wrapped[1:] {
		lines = append(lines, "           "+cont)
	}
	return lines
}

// summaryLines renders a summary inside its conversation block. Embedded
// newlines in the summary text are paragraph-internal breaks and stay inside
// the same block rather than starting new ones.
func summaryLines(item *model.SummaryItem, width int) []string {
	covered := item.TranscriptionEnd
	if covered != util.StreamEndSentinel {
		covered = util.FormatStreamOffset(util.ParseStreamOffset(covered))
	}

	lines := []string{summaryStyle.Render(fmt.Sprintf("  ── summary through %s ──", covered))}
	for _, paragraph := range strings.Split(item.Text, "\n") {
		for _, wrapped := range util.WrapText(paragraph, width) {
			lines = append(lines, summaryStyle.Render("  "+wrapped))
		}
	}
	return lines
}
