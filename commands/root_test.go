package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/convoview/go-convo-monitor/internal/core/model"
)

func intPtr(v int) *int { return &v }

func TestToRows(t *testing.T) {
	conversations := []model.Conversation{
		{
			ID:        "conv-1",
			SessionID: "sess-1",
			Active:    true,
			Ani:       "+14155550111",
			AniName:   "Jamie Rivera",
			Dnis:      "+18005550123",
			Transcript: []model.TranscriptItem{
				{Channel: intPtr(0), Text: "hello", Start: "PT0.5S", End: "PT2.1S"},
				{Channel: intPtr(1), Text: "hi there", Start: "PT2.4S", End: "PT4.8S"},
			},
			Summary: []model.SummaryItem{
				{Text: "Greeting exchanged.", TranscriptionEnd: "PT4.8S"},
			},
		},
		{
			ID:        "conv-2",
			SessionID: "sess-2",
			Active:    false,
			Ani:       "+14155550222",
			Dnis:      "+18005550123",
		},
	}

	rows := toRows(conversations)

	assert.Len(t, rows, 2)

	assert.Equal(t, "conv-1", rows[0].ID)
	assert.Equal(t, "sess-1", rows[0].SessionID)
	assert.True(t, rows[0].Active)
	assert.Equal(t, "Jamie Rivera (+14155550111)", rows[0].Caller)
	assert.Equal(t, "+18005550123", rows[0].Dialed)
	assert.Equal(t, 2, rows[0].TranscriptCount)
	assert.Equal(t, 1, rows[0].SummaryCount)
	assert.InDelta(t, 4.8, rows[0].LastOffset, 0.0001)

	assert.Equal(t, "+14155550222", rows[1].Caller)
	assert.Equal(t, 0, rows[1].TranscriptCount)
	assert.Equal(t, 0.0, rows[1].LastOffset)
}

func TestCallerLabel(t *testing.T) {
	tests := []struct {
		name     string
		conv     model.Conversation
		expected string
	}{
		{
			name:     "name and number",
			conv:     model.Conversation{Ani: "+14155550111", AniName: "Jamie Rivera"},
			expected: "Jamie Rivera (+14155550111)",
		},
		{
			name:     "number only",
			conv:     model.Conversation{Ani: "+14155550111"},
			expected: "+14155550111",
		},
		{
			name:     "empty",
			conv:     model.Conversation{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, callerLabel(&tt.conv))
		})
	}
}

func TestLastOffset(t *testing.T) {
	tests := []struct {
		name       string
		transcript []model.TranscriptItem
		expected   float64
	}{
		{
			name:       "empty transcript",
			transcript: nil,
			expected:   0,
		},
		{
			name: "last segment end wins",
			transcript: []model.TranscriptItem{
				{End: "PT2.0S"},
				{End: "PT7.5S"},
			},
			expected: 7.5,
		},
		{
			name: "malformed trailing end falls back to prior segment",
			transcript: []model.TranscriptItem{
				{End: "PT2.0S"},
				{End: "garbage"},
			},
			expected: 2.0,
		},
		{
			name: "all malformed",
			transcript: []model.TranscriptItem{
				{End: ""},
				{End: "not-a-duration"},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, lastOffset(tt.transcript), 0.0001)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test", "nested", "dir")

	err := ensureDir(testDir)
	assert.NoError(t, err)

	// Verify directory was created
	info, err := os.Stat(testDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Test idempotency
	err = ensureDir(testDir)
	assert.NoError(t, err)
}

func TestRootCommandFlags(t *testing.T) {
	assert.Equal(t, "table", rootCmd.Flags().Lookup("output").DefValue)
	assert.Equal(t, "false", rootCmd.Flags().Lookup("active-only").DefValue)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("endpoint"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("api-key"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("timeout"))
}
