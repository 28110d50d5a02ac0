package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/convoview/go-convo-monitor/internal/application/watch"
	"github.com/convoview/go-convo-monitor/internal/config"
	"github.com/convoview/go-convo-monitor/internal/util"
)

var (
	// Polling related flags
	watchActiveInterval time.Duration
	watchIdleInterval   time.Duration

	// Display related flags
	watchRefreshPerSecond float64
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor conversations in real-time",
	Long: `Displays live conversations in a full-screen dashboard, refreshed by
polling the server.

Polling cadence adapts to activity: a short interval while any conversation
is live, a long one once everything has ended. Active conversations render
expanded; press space to expand or collapse any conversation yourself.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	// Polling flags
	watchCmd.Flags().DurationVar(&watchActiveInterval, "active-interval", 3*time.Second,
		"Polling interval while any conversation is live")
	watchCmd.Flags().DurationVar(&watchIdleInterval, "idle-interval", 15*time.Second,
		"Polling interval once every conversation has ended")

	// Display flags
	watchCmd.Flags().Float64Var(&watchRefreshPerSecond, "refresh-per-second", 2,
		"Display refresh rate (0.1-20 Hz)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	// Initialize logging (reuse root logic)
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := config.ExpandPath(defaultLogFile)
	ensureDir(filepath.Dir(logFile))
	util.InitLogger(logLevel, logFile, debug)

	if err := mergeFileConfig(); err != nil {
		return err
	}
	if endpoint == "" {
		return fmt.Errorf("endpoint is required (flag --endpoint or config file)")
	}

	// Intervals from the config file apply when the flags were not given.
	if fileCfg, err := config.Load(config.ExpandPath(configPath)); err == nil && fileCfg != nil {
		if !cmd.Flags().Changed("active-interval") {
			watchActiveInterval = fileCfg.Interval(fileCfg.ActiveInterval, watchActiveInterval)
		}
		if !cmd.Flags().Changed("idle-interval") {
			watchIdleInterval = fileCfg.Interval(fileCfg.IdleInterval, watchIdleInterval)
		}
	}

	if watchRefreshPerSecond < 0.1 || watchRefreshPerSecond > 20 {
		return fmt.Errorf("refresh-per-second must be between 0.1 and 20")
	}

	cfg := &watch.WatchConfig{
		Endpoint:       endpoint,
		APIKey:         apiKey,
		ActiveInterval: watchActiveInterval,
		IdleInterval:   watchIdleInterval,
		UIRefreshRate:  watchRefreshPerSecond,
		RequestTimeout: timeout,
		ConfigPath:     config.ExpandPath(configPath),
	}

	orchestrator, err := watch.NewOrchestrator(cfg)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		<-sigChan
		cancel()
	}()

	return orchestrator.Run(ctx)
}
