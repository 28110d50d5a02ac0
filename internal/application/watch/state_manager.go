package watch

import (
	"sync"
	"time"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/core/timeline"
)

// Snapshot is one poll cycle's worth of backend state: the conversations as
// returned, their merged timelines, and the activity summary. It is replaced
// wholesale on every successful refresh and never mutated in place.
type Snapshot struct {
	Conversations []model.Conversation
	Timelines     map[string][]timeline.MergedEntry
	AnyActive     bool
	Seq           uint64
}

// StateManager owns all mutable dashboard state: the latest snapshot, the
// set of conversations the user explicitly expanded, and keyboard-driven
// interaction state. One instance exists per dashboard run, so independent
// runs (and tests) never interfere through package globals.
type StateManager struct {
	mu sync.RWMutex

	snapshot *Snapshot
	expanded map[string]bool

	interactionState model.InteractionState

	lastDataUpdate time.Time
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		expanded: make(map[string]bool),
	}
}

// Snapshot returns the latest snapshot, or nil before the first successful
// refresh.
func (sm *StateManager) Snapshot() *Snapshot {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.snapshot
}

// SetSnapshot replaces the current snapshot. A snapshot older than the one
// already published is rejected, so overlapping refreshes can never regress
// the screen no matter how their goroutines interleave.
func (sm *StateManager) SetSnapshot(snap *Snapshot) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.snapshot != nil && snap.Seq < sm.snapshot.Seq {
		return false
	}
	sm.snapshot = snap
	sm.lastDataUpdate = time.Now()
	return true
}

// IsExpanded reports whether the user has explicitly expanded the
// conversation. Active conversations render expanded regardless; that
// decision belongs to the view, not the store, so a collapse recorded here
// takes effect the moment the conversation goes inactive.
func (sm *StateManager) IsExpanded(id string) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.expanded[id]
}

// ToggleExpanded flips the expansion state of the conversation. Applying it
// twice restores the prior state; conversations never toggled default to
// collapsed.
func (sm *StateManager) ToggleExpanded(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.expanded[id] {
		delete(sm.expanded, id)
	} else {
		sm.expanded[id] = true
	}
}

// GetInteractionState returns a copy of the current interaction state.
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.interactionState
}

// UpdateInteractionState updates interaction state fields under the lock.
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(&sm.interactionState)
}

// LastDataUpdate returns when the snapshot last changed.
func (sm *StateManager) LastDataUpdate() time.Time {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.lastDataUpdate
}
