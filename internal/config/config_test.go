package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"endpoint": "https://monitor.example.com",
		"api_key": "secret",
		"active_interval": "2s",
		"idle_interval": "30s"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://monitor.example.com", cfg.Endpoint)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Interval(cfg.ActiveInterval, time.Second))
	assert.Equal(t, 30*time.Second, cfg.Interval(cfg.IdleInterval, time.Second))
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestIntervalFallbacks(t *testing.T) {
	cfg := &FileConfig{}

	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "empty_uses_fallback", value: "", expected: 5 * time.Second},
		{name: "malformed_uses_fallback", value: "fast", expected: 5 * time.Second},
		{name: "negative_uses_fallback", value: "-3s", expected: 5 * time.Second},
		{name: "valid_parses", value: "750ms", expected: 750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cfg.Interval(tt.value, 5*time.Second))
		})
	}
}

func TestIntervalOnNilConfig(t *testing.T) {
	var cfg *FileConfig
	assert.Equal(t, time.Second, cfg.Interval("2s", time.Second))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x.json"), ExpandPath("~/x.json"))
	assert.Equal(t, "/etc/monitor.json", ExpandPath("/etc/monitor.json"))
}
