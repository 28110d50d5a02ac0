package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// FileConfig is the optional JSON config file. Every field is optional;
// command-line flags override whatever the file provides.
type FileConfig struct {
	Endpoint       string `json:"endpoint"`
	APIKey         string `json:"api_key"`
	ActiveInterval string `json:"active_interval"`
	IdleInterval   string `json:"idle_interval"`
	Timeout        string `json:"timeout"`
}

// DefaultPath is the conventional config file location.
const DefaultPath = "~/.go-convo-monitor/config.json"

// Load reads and parses the config file at path. A missing file is not an
// error: the tool runs on flags alone.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Interval parses one of the duration fields, falling back when the field is
// empty or malformed.
func (c *FileConfig) Interval(value string, fallback time.Duration) time.Duration {
	if c == nil || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// ExpandPath resolves a leading ~/ against the user home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
