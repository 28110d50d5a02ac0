package watch

import (
	"time"

	"github.com/convoview/go-convo-monitor/internal/util"
)

// AdaptiveScheduler owns the data-refresh ticker and adapts its period to
// conversation activity: a short period while anything is live, a long one
// otherwise. Reapplying an unchanged period is a no-op so the ticker never
// churns or drifts on steady state.
type AdaptiveScheduler struct {
	activeInterval time.Duration
	idleInterval   time.Duration

	ticker      *time.Ticker
	current     time.Duration
	reschedules int
}

// NewAdaptiveScheduler creates a scheduler starting at the active interval,
// so a freshly opened dashboard picks up live conversations quickly.
func NewAdaptiveScheduler(activeInterval, idleInterval time.Duration) *AdaptiveScheduler {
	return &AdaptiveScheduler{
		activeInterval: activeInterval,
		idleInterval:   idleInterval,
		ticker:         time.NewTicker(activeInterval),
		current:        activeInterval,
	}
}

// Desired returns the polling period appropriate for the given activity.
func (s *AdaptiveScheduler) Desired(anyActive bool) time.Duration {
	if anyActive {
		return s.activeInterval
	}
	return s.idleInterval
}

// ApplyIfChanged resets the ticker to the new period, unless it is already
// in effect.
func (s *AdaptiveScheduler) ApplyIfChanged(interval time.Duration) {
	if interval == s.current {
		return
	}
	util.LogDebugf("Polling interval %v -> %v", s.current, interval)
	s.ticker.Reset(interval)
	s.current = interval
	s.reschedules++
}

// SetIntervals replaces both periods, used on config hot reload. The ticker
// is re-armed only if the period currently in effect changed.
func (s *AdaptiveScheduler) SetIntervals(activeInterval, idleInterval time.Duration) {
	wasActive := s.current == s.activeInterval
	s.activeInterval = activeInterval
	s.idleInterval = idleInterval
	if wasActive {
		s.ApplyIfChanged(activeInterval)
	} else {
		s.ApplyIfChanged(idleInterval)
	}
}

// Current returns the period currently in effect.
func (s *AdaptiveScheduler) Current() time.Duration {
	return s.current
}

// Reschedules returns how many times the ticker was actually re-armed.
func (s *AdaptiveScheduler) Reschedules() int {
	return s.reschedules
}

// C exposes the tick channel.
func (s *AdaptiveScheduler) C() <-chan time.Time {
	return s.ticker.C
}

// Stop stops the underlying ticker.
func (s *AdaptiveScheduler) Stop() {
	s.ticker.Stop()
}
