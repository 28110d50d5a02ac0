package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/convoview/go-convo-monitor/internal/config"
	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/data/fetch"
	"github.com/convoview/go-convo-monitor/internal/presentation/display"
	"github.com/convoview/go-convo-monitor/internal/presentation/interaction"
	"github.com/convoview/go-convo-monitor/internal/presentation/layout"
	"github.com/convoview/go-convo-monitor/internal/util"
)

// Orchestrator coordinates all components of the watch dashboard: the
// adaptive poller, the state manager, the renderer, keyboard input, and the
// optional config-file watcher. One instance owns one dashboard run.
type Orchestrator struct {
	config *WatchConfig

	client       *fetch.Client
	refreshCtrl  *RefreshController
	stateManager *StateManager
	scheduler    *AdaptiveScheduler

	display       *display.TerminalDisplay
	keyboard      *interaction.KeyboardReader
	configWatcher *config.Watcher
}

// NewOrchestrator creates a new Orchestrator instance.
func NewOrchestrator(cfg *WatchConfig) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := fetch.NewClient(cfg.Endpoint, cfg.APIKey, cfg.RequestTimeout)
	stateManager := NewStateManager()

	return &Orchestrator{
		config:       cfg,
		client:       client,
		refreshCtrl:  NewRefreshController(client, stateManager),
		stateManager: stateManager,
		scheduler:    NewAdaptiveScheduler(cfg.ActiveInterval, cfg.IdleInterval),
		display:      display.NewTerminalDisplay(),
	}, nil
}

// Run starts the orchestrator main loop and blocks until ctx is canceled or
// the user quits.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting conversation watch...")
	defer o.Close()

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		return fmt.Errorf("failed to initialize keyboard: %w", err)
	}
	o.keyboard = keyboard
	defer o.keyboard.Close()

	if o.config.ConfigPath != "" {
		watcher, err := config.NewWatcher(o.config.ConfigPath)
		if err != nil {
			// Hot reload is a convenience; the dashboard still runs.
			util.LogWarnf("Config watching disabled: %v", err)
		} else {
			o.configWatcher = watcher
		}
	}

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	defer o.scheduler.Stop()

	uiTicker := time.NewTicker(time.Duration(float64(time.Second) / o.config.UIRefreshRate))
	defer uiTicker.Stop()

	// The fetch is the only suspension point: it runs on its own goroutine
	// and delivers into the loop, which does all rendering and rescheduling.
	results := make(chan *Snapshot, 4)
	o.startRefresh(ctx, results)
	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down conversation watch...")
			return nil

		case <-o.scheduler.C():
			state := o.stateManager.GetInteractionState()
			if !state.IsPaused {
				o.startRefresh(ctx, results)
			}

		case snap := <-results:
			o.updateDisplay()
			o.scheduler.ApplyIfChanged(o.scheduler.Desired(snap.AnyActive))

		case <-uiTicker.C:
			state := o.stateManager.GetInteractionState()
			if !state.IsPaused {
				o.updateDisplay()
			}

		case cfg := <-o.configEvents():
			o.applyConfig(cfg)

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(ctx, keyEvent, results) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

// startRefresh launches one poll cycle. Failures leave the previous snapshot
// and the running timer untouched; the next tick retries naturally.
func (o *Orchestrator) startRefresh(ctx context.Context, results chan<- *Snapshot) {
	go func() {
		snap, err := o.refreshCtrl.Refresh(ctx)
		if err != nil {
			if !errors.Is(err, ErrStaleResponse) && ctx.Err() == nil {
				util.LogError(fmt.Sprintf("Refresh failed: %v", err))
			}
			return
		}
		select {
		case results <- snap:
		case <-ctx.Done():
		}
	}()
}

// updateDisplay rebuilds the whole screen from current state.
func (o *Orchestrator) updateDisplay() {
	snap := o.stateManager.Snapshot()
	state := o.stateManager.GetInteractionState()

	var blocks []layout.ConversationBlock
	if snap != nil {
		if state.SelectedIdx >= len(snap.Conversations) {
			state.SelectedIdx = len(snap.Conversations) - 1
		}
		blocks = layout.BuildDashboard(snap.Conversations, snap.Timelines, o.stateManager, state.SelectedIdx, layout.TerminalWidth())
	}

	o.display.RenderDashboard(blocks, state, o.scheduler.Current(), o.stateManager.LastDataUpdate())
}

// handleKeyboard handles keyboard events, returning true to exit.
func (o *Orchestrator) handleKeyboard(ctx context.Context, event interaction.KeyEvent, results chan<- *Snapshot) bool {
	switch event.Type {
	case interaction.KeyChar:
		switch event.Key {
		case 'q', 'Q', 3: // 'q', 'Q', or Ctrl+C
			return true
		case 'r', 'R':
			o.startRefresh(ctx, results)
		case 'p', 'P':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.IsPaused = !s.IsPaused
			})
		case 'h', 'H':
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = !s.ShowHelp
			})
		case 'j':
			o.moveSelection(1)
		case 'k':
			o.moveSelection(-1)
		case ' ':
			o.toggleSelected()
		}
	case interaction.KeyDown:
		o.moveSelection(1)
	case interaction.KeyUp:
		o.moveSelection(-1)
	case interaction.KeyEnter:
		o.toggleSelected()
	case interaction.KeyEscape:
		state := o.stateManager.GetInteractionState()
		if state.ShowHelp {
			o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
				s.ShowHelp = false
			})
		} else {
			return true
		}
	}
	return false
}

func (o *Orchestrator) moveSelection(delta int) {
	snap := o.stateManager.Snapshot()
	if snap == nil || len(snap.Conversations) == 0 {
		return
	}
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.SelectedIdx += delta
		if s.SelectedIdx < 0 {
			s.SelectedIdx = 0
		}
		if s.SelectedIdx >= len(snap.Conversations) {
			s.SelectedIdx = len(snap.Conversations) - 1
		}
	})
}

// toggleSelected flips expansion for the selected conversation. The store
// records the toggle even while the conversation is active and forced open,
// so the collapse applies as soon as it ends.
func (o *Orchestrator) toggleSelected() {
	snap := o.stateManager.Snapshot()
	if snap == nil || len(snap.Conversations) == 0 {
		return
	}
	state := o.stateManager.GetInteractionState()
	idx := state.SelectedIdx
	if idx < 0 || idx >= len(snap.Conversations) {
		return
	}
	o.stateManager.ToggleExpanded(snap.Conversations[idx].ID)
}

func (o *Orchestrator) configEvents() <-chan *config.FileConfig {
	if o.configWatcher == nil {
		return nil
	}
	return o.configWatcher.Events()
}

// applyConfig applies a hot-reloaded config file: API key and polling
// intervals take effect without restarting the dashboard.
func (o *Orchestrator) applyConfig(cfg *config.FileConfig) {
	if cfg == nil {
		return
	}
	util.LogInfo("Config file changed, applying")

	if cfg.APIKey != "" {
		o.client.SetAPIKey(cfg.APIKey)
	}

	active := cfg.Interval(cfg.ActiveInterval, o.config.ActiveInterval)
	idle := cfg.Interval(cfg.IdleInterval, o.config.IdleInterval)
	if active <= idle {
		o.scheduler.SetIntervals(active, idle)
	}
}

// Close cleans up all resources.
func (o *Orchestrator) Close() error {
	if o.configWatcher != nil {
		if err := o.configWatcher.Close(); err != nil {
			return fmt.Errorf("failed to close config watcher: %w", err)
		}
	}
	return nil
}
