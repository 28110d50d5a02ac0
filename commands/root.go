package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/convoview/go-convo-monitor/internal/config"
	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/data/fetch"
	"github.com/convoview/go-convo-monitor/internal/presentation/formatter"
	"github.com/convoview/go-convo-monitor/internal/util"
)

var (
	// Logging related
	debug bool

	// Connection
	endpoint   string
	apiKey     string
	configPath string
	timeout    time.Duration

	// Output related
	outputFormat string
	activeOnly   bool

	rootCmd = &cobra.Command{
		Use:   "go-convo-monitor [flags]",
		Short: "AudioHook conversation monitoring tool",
		Long: `go-convo-monitor is a command-line tool for monitoring live transcription
sessions served by an AudioHook-style server.

The root command fetches the conversation list once and prints a report.

Examples:
  go-convo-monitor --endpoint https://monitor.example.com --api-key secret
  go-convo-monitor --output json                        # Full list as JSON
  go-convo-monitor --active-only --output summary       # Aggregate live view
  go-convo-monitor show 09e3a837                        # One merged timeline
  go-convo-monitor watch                                # Live dashboard`,
		RunE: runList,
	}
)

const (
	defaultLogFile = "~/.go-convo-monitor/logs/app.log"
	defaultTimeout = 10 * time.Second
)

func init() {
	// Connection configuration
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "",
		"Server base URL (e.g. https://monitor.example.com)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "",
		"API key sent as ?key= and X-Api-Key")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath,
		"Config file path")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout,
		"HTTP request timeout")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.Flags().BoolVar(&activeOnly, "active-only", false,
		"Only list conversations whose capture is in progress")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	conversations, err := client.Conversations(ctx, activeOnly)
	if err != nil {
		return fmt.Errorf("failed to list conversations: %w", err)
	}

	return formatter.New(outputFormat).Format(toRows(conversations))
}

// setup initializes logging, merges the config file into unset flags, and
// builds the API client. Shared by the one-shot commands.
func setup() (*fetch.Client, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := config.ExpandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	if err := mergeFileConfig(); err != nil {
		return nil, err
	}
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required (flag --endpoint or config file)")
	}

	return fetch.NewClient(endpoint, apiKey, timeout), nil
}

// mergeFileConfig fills flags left at their zero value from the config file.
func mergeFileConfig() error {
	fileCfg, err := config.Load(config.ExpandPath(configPath))
	if err != nil {
		return err
	}
	if fileCfg == nil {
		return nil
	}
	if endpoint == "" {
		endpoint = fileCfg.Endpoint
	}
	if apiKey == "" {
		apiKey = fileCfg.APIKey
	}
	if timeout == defaultTimeout {
		timeout = fileCfg.Interval(fileCfg.Timeout, defaultTimeout)
	}
	return nil
}

func toRows(conversations []model.Conversation) []formatter.ConversationRow {
	rows := make([]formatter.ConversationRow, 0, len(conversations))
	for _, conv := range conversations {
		rows = append(rows, formatter.ConversationRow{
			ID:              conv.ID,
			SessionID:       conv.SessionID,
			Active:          conv.Active,
			Caller:          callerLabel(&conv),
			Dialed:          conv.Dnis,
			TranscriptCount: len(conv.Transcript),
			SummaryCount:    len(conv.Summary),
			LastOffset:      lastOffset(conv.Transcript),
		})
	}
	return rows
}

func callerLabel(conv *model.Conversation) string {
	if conv.AniName != "" {
		return fmt.Sprintf("%s (%s)", conv.AniName, conv.Ani)
	}
	return conv.Ani
}

// lastOffset is the end of the final recognized segment, in seconds.
func lastOffset(transcript []model.TranscriptItem) float64 {
	for i := len(transcript) - 1; i >= 0; i-- {
		if offset := util.ParseStreamOffset(transcript[i].End); offset > 0 {
			return offset
		}
	}
	return 0
}

func Execute() error {
	return rootCmd.Execute()
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
