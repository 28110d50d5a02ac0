package watch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/core/timeline"
	"github.com/convoview/go-convo-monitor/internal/util"
)

// ErrStaleResponse marks a refresh whose response arrived after a newer
// refresh had already started. Its result is discarded unrendered.
var ErrStaleResponse = errors.New("stale refresh response dropped")

// ConversationFetcher is the read surface the refresh controller needs from
// the API client.
type ConversationFetcher interface {
	Conversations(ctx context.Context, activeOnly bool) ([]model.Conversation, error)
}

// RefreshController drives one poll cycle: fetch the conversation list,
// merge each conversation's two streams into a timeline, and publish the
// result as a new snapshot.
//
// Every refresh is tagged with a monotonically increasing sequence number.
// A slow fetch that is overtaken by a newer one has its response dropped,
// so overlapping in-flight fetches can never apply out of order.
type RefreshController struct {
	fetcher ConversationFetcher
	state   *StateManager
	seq     atomic.Uint64
}

// NewRefreshController creates a new RefreshController instance.
func NewRefreshController(fetcher ConversationFetcher, state *StateManager) *RefreshController {
	return &RefreshController{
		fetcher: fetcher,
		state:   state,
	}
}

// Refresh performs one poll cycle. On fetch or decode failure nothing is
// published: the previous snapshot stays on screen and the running timer is
// left untouched, making the polling interval the implicit retry interval.
func (rc *RefreshController) Refresh(ctx context.Context) (*Snapshot, error) {
	seq := rc.seq.Add(1)

	conversations, err := rc.fetcher.Conversations(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("refresh %d failed: %w", seq, err)
	}

	if rc.seq.Load() != seq {
		util.LogDebugf("Dropping refresh %d, a newer one is in flight", seq)
		return nil, ErrStaleResponse
	}

	// The sequence check above can pass just before a newer refresh starts;
	// the store rejects the publish if that refresh lands first.
	snap := buildSnapshot(conversations, seq)
	if !rc.state.SetSnapshot(snap) {
		util.LogDebugf("Dropping refresh %d, a newer one already published", seq)
		return nil, ErrStaleResponse
	}
	return snap, nil
}

func buildSnapshot(conversations []model.Conversation, seq uint64) *Snapshot {
	snap := &Snapshot{
		Conversations: conversations,
		Timelines:     make(map[string][]timeline.MergedEntry, len(conversations)),
		Seq:           seq,
	}
	for i := range conversations {
		conv := &conversations[i]
		snap.Timelines[conv.ID] = timeline.Merge(conv.Transcript, conv.Summary)
		if conv.Active {
			snap.AnyActive = true
		}
	}
	return snap
}
