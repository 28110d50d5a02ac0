package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOutputWritesJSONLines(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	logger := NewLogger("debug", logFile, false)
	logger.Info("refresh complete", Field{Key: "conversations", Value: 3})
	logger.closeOutputs()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(line), &entry))

	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "refresh complete", entry.Message)
	assert.EqualValues(t, 3, entry.Fields["conversations"])
	assert.False(t, entry.Timestamp.IsZero())
}

func TestRenderEntryFormats(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		Level:     "WARN",
		Message:   "config reload ignored",
		Fields:    map[string]interface{}{"path": "/tmp/config.json"},
	}

	text, err := renderEntry(entry, FormatText)
	require.NoError(t, err)
	assert.Contains(t, text, "2026/08/01 12:30:00")
	assert.Contains(t, text, "[WARN] config reload ignored")
	assert.Contains(t, text, "path=/tmp/config.json")

	jsonOut, err := renderEntry(entry, FormatJSON)
	require.NoError(t, err)
	var decoded LogEntry
	require.NoError(t, sonic.Unmarshal([]byte(jsonOut), &decoded))
	assert.Equal(t, entry.Level, decoded.Level)
	assert.Equal(t, entry.Message, decoded.Message)
}

func TestLoggerLevelFiltering(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "app.log")

	logger := NewLogger("warn", logFile, false)
	logger.Debug("dropped")
	logger.Info("also dropped")
	logger.Warn("kept")
	logger.closeOutputs()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "dropped")
	assert.Contains(t, content, "kept")
}
