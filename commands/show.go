package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/core/timeline"
	"github.com/convoview/go-convo-monitor/internal/util"
)

var showCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Print one conversation's merged timeline",
	Long: `Fetches a single conversation and prints its transcript and summaries
interleaved in stream order, the same merge the watch dashboard renders.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	client, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conv, err := client.Conversation(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch conversation %s: %w", args[0], err)
	}

	printConversation(conv)
	return nil
}

func printConversation(conv *model.Conversation) {
	state := "ended"
	if conv.Active {
		state = "active"
	}

	fmt.Printf("Conversation %s (session %s, %s)\n", conv.ID, conv.SessionID, state)
	if conv.Ani != "" || conv.Dnis != "" {
		fmt.Printf("%s → %s\n", callerLabel(conv), conv.Dnis)
	}
	fmt.Println(strings.Repeat("─", 72))

	entries := timeline.Merge(conv.Transcript, conv.Summary)
	if len(entries) == 0 {
		fmt.Println("(no transcript yet)")
		return
	}

	for _, entry := range entries {
		switch entry.Kind {
		case timeline.KindTranscript:
			item := entry.Transcript
			offset := util.FormatStreamOffset(util.ParseStreamOffset(item.Start))
			fmt.Printf("[%7s] %-8s %s\n", offset, util.ChannelLabel(item.Channel)+":", item.Text)
		case timeline.KindSummary:
			item := entry.Summary
			fmt.Printf("          ── summary through %s ──\n", item.TranscriptionEnd)
			for _, line := range strings.Split(item.Text, "\n") {
				fmt.Printf("          %s\n", line)
			}
		}
	}
}
