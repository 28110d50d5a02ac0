package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/presentation/layout"
	"github.com/convoview/go-convo-monitor/internal/util"
)

// TerminalDisplay draws the dashboard into the alternate screen buffer.
// Every render clears the screen and rebuilds it from the current blocks;
// nothing is patched incrementally, so stale or half-updated content cannot
// survive a cycle.
type TerminalDisplay struct {
	inAlternateScreen bool
	lastDraw          int64
}

// NewTerminalDisplay creates a new TerminalDisplay instance.
func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{}
}

// EnterAlternateScreen switches to the alternate screen buffer.
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Print(util.EnterAltScreen)
		fmt.Print(util.ClearScreen)
		fmt.Print(util.ClearScrollback)
		fmt.Print(util.ResetScrollRegion)
		fmt.Print(util.DisableScrollback)
		fmt.Print(util.HideCursor)
		fmt.Print(util.MoveCursorHome)
		td.inAlternateScreen = true
	}
}

// ExitAlternateScreen returns to the normal screen buffer.
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
		fmt.Print(util.EnableScrollback)
		fmt.Print(util.ShowCursor)
		fmt.Print(util.ExitAltScreen)
		td.inAlternateScreen = false
	}
}

// RenderDashboard clears the screen and draws the header, every
// conversation block, and the footer.
func (td *TerminalDisplay) RenderDashboard(blocks []layout.ConversationBlock, state model.InteractionState, pollInterval time.Duration, lastUpdate time.Time) {
	width := layout.TerminalWidth()

	fmt.Print(util.ClearScreen)
	fmt.Print(util.MoveCursorHome)

	if state.ShowHelp {
		td.renderHelp()
		return
	}

	td.renderHeader(blocks, state, pollInterval, lastUpdate, width)

	if len(blocks) == 0 {
		fmt.Println()
		fmt.Println("  No conversations.")
	}

	for _, block := range blocks {
		fmt.Println()
		fmt.Println(" " + block.Header)
		for _, line := range block.Body {
			fmt.Println("  " + line)
		}
	}

	fmt.Println()
	fmt.Println(util.FormatSectionSeparator(width))
	fmt.Println("  q quit · r refresh · p pause · j/k select · space expand · h help")

	td.lastDraw = time.Now().Unix()
}

func (td *TerminalDisplay) renderHeader(blocks []layout.ConversationBlock, state model.InteractionState, pollInterval time.Duration, lastUpdate time.Time, width int) {
	active := 0
	for _, block := range blocks {
		if block.Active {
			active++
		}
	}

	title := fmt.Sprintf("%s%sConversation Monitor%s", util.ColorBold, util.ColorCyan, util.ColorReset)
	status := fmt.Sprintf("%d conversations (%d live) · polling every %v", len(blocks), active, pollInterval)
	if !lastUpdate.IsZero() {
		status += fmt.Sprintf(" · updated %s", lastUpdate.Format("15:04:05"))
	}
	if state.IsPaused {
		status += " · " + util.ColorYellow + "PAUSED" + util.ColorReset
	}

	fmt.Println(" " + title)
	fmt.Println(" " + util.ColorGray + status + util.ColorReset)
	fmt.Println(util.FormatSectionSeparator(width))
}

func (td *TerminalDisplay) renderHelp() {
	fmt.Println("Conversation Monitor - Help")
	fmt.Println(strings.Repeat("═", 60))
	fmt.Println()
	fmt.Println("Keyboard Shortcuts:")
	fmt.Println()
	fmt.Println("  q/Esc/Ctrl+C - Quit the program")
	fmt.Println("  r            - Force refresh now")
	fmt.Println("  p            - Pause/unpause polling")
	fmt.Println("  j / Down     - Select next conversation")
	fmt.Println("  k / Up       - Select previous conversation")
	fmt.Println("  Space/Enter  - Expand or collapse the selection")
	fmt.Println("  h            - Toggle this help")
	fmt.Println()
	fmt.Println("Active conversations always render expanded; a collapse is")
	fmt.Println("remembered and applies once the conversation ends.")
	fmt.Println()
	fmt.Println(strings.Repeat("═", 60))
	fmt.Println("Press 'h' to return...")
	fmt.Print(util.ClearToScreenEnd)
}
