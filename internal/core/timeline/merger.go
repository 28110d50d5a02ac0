package timeline

import (
	"math"

	"github.com/convoview/go-convo-monitor/internal/core/model"
	"github.com/convoview/go-convo-monitor/internal/util"
)

// EntryKind tags the origin of a merged entry.
type EntryKind int

const (
	KindTranscript EntryKind = iota
	KindSummary
)

// MergedEntry is one element of a conversation's combined timeline. Exactly
// one of Transcript or Summary is set, according to Kind. Entries exist only
// for rendering and are rebuilt from scratch every refresh cycle.
type MergedEntry struct {
	Kind       EntryKind
	Transcript *model.TranscriptItem
	Summary    *model.SummaryItem
}

// Merge interleaves a conversation's transcript and summary sequences into a
// single temporally ordered timeline. Both inputs are assumed to already be
// ordered ascending by their own offsets; the merge is a stable interleave,
// never a sort, so relative order within each input is preserved.
//
// A cursor walks the summaries. Each transcript item is appended, then every
// summary whose transcription_end does not exceed that item's end offset is
// flushed behind it. Once the transcript is exhausted, summaries carrying the
// "end" sentinel are flushed last; any other trailing summary is dropped.
// An empty transcript yields an empty timeline even when summaries exist.
func Merge(transcript []model.TranscriptItem, summaries []model.SummaryItem) []MergedEntry {
	if len(transcript) == 0 {
		return []MergedEntry{}
	}

	merged := make([]MergedEntry, 0, len(transcript)+len(summaries))

	cursor := 0
	for i := range transcript {
		item := &transcript[i]
		merged = append(merged, MergedEntry{Kind: KindTranscript, Transcript: item})

		itemEnd := util.ParseStreamOffset(item.End)
		for cursor < len(summaries) && util.ParseStreamOffset(summaries[cursor].TranscriptionEnd) <= itemEnd {
			merged = append(merged, MergedEntry{Kind: KindSummary, Summary: &summaries[cursor]})
			cursor++
		}
	}

	// The backend's final summary covers the whole conversation and carries
	// the sentinel offset, which no finite transcript offset can reach.
	for ; cursor < len(summaries); cursor++ {
		if math.IsInf(util.ParseStreamOffset(summaries[cursor].TranscriptionEnd), 1) {
			merged = append(merged, MergedEntry{Kind: KindSummary, Summary: &summaries[cursor]})
		}
	}

	return merged
}
