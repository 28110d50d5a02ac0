package watch

import (
	"fmt"
	"time"
)

// WatchConfig holds the configuration for the watch command.
type WatchConfig struct {
	Endpoint string
	APIKey   string

	// ActiveInterval is the polling period while any conversation is live,
	// IdleInterval the period once every conversation has ended.
	ActiveInterval time.Duration
	IdleInterval   time.Duration

	// UIRefreshRate is display redraws per second.
	UIRefreshRate float64

	// RequestTimeout bounds each fetch.
	RequestTimeout time.Duration

	// ConfigPath is the config file to watch for hot reload; empty disables.
	ConfigPath string
}

// Validate checks the configuration for contradictions.
func (c *WatchConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.ActiveInterval <= 0 || c.IdleInterval <= 0 {
		return fmt.Errorf("polling intervals must be positive")
	}
	if c.ActiveInterval > c.IdleInterval {
		return fmt.Errorf("active interval %v must not exceed idle interval %v", c.ActiveInterval, c.IdleInterval)
	}
	if c.UIRefreshRate < 0.1 || c.UIRefreshRate > 20 {
		return fmt.Errorf("ui refresh rate must be between 0.1 and 20")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}
