// Package config provides centralized configuration for RemindMe
// runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// RuntimeConfig holds runtime configuration values that would otherwise
// be magic numbers scattered through the codebase.
type RuntimeConfig struct {
	Sweep SweepConfig
	Alert AlertConfig
	HTTP  HTTPConfig
}

// SweepConfig holds overdue-sweep configuration.
type SweepConfig struct {
	// Interval is how often the sweep re-evaluates all reminders.
	// Default: 10s
	Interval time.Duration

	// SleepThreshold is the gap since the last tick that indicates the
	// system was suspended; stale ticks are skipped.
	// Default: 1h
	SleepThreshold time.Duration
}

// AlertConfig holds notification-policy configuration.
type AlertConfig struct {
	// SnoozeOffset is how far a snoozed alert is pushed out.
	// Default: 10m
	SnoozeOffset time.Duration

	// OverdueFireDelay is the short delay before an already-past-due
	// reminder raises its immediate overdue alert.
	// Default: 1s
	OverdueFireDelay time.Duration

	// MOTDDelay is the delay between a store change and the
	// message-of-the-day check.
	// Default: 1s
	MOTDDelay time.Duration
}

// HTTPConfig holds webhook HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the per-request timeout. Default: 30s
	Timeout time.Duration

	// MaxRetries is the maximum number of retry attempts. Default: 3
	MaxRetries int

	// RetryDelays are the delays between retry attempts.
	// Default: [0s, 5s, 30s]
	RetryDelays []time.Duration
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Sweep: SweepConfig{
			Interval:       10 * time.Second,
			SleepThreshold: time.Hour,
		},
		Alert: AlertConfig{
			SnoozeOffset:     10 * time.Minute,
			OverdueFireDelay: time.Second,
			MOTDDelay:        time.Second,
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelays: []time.Duration{
				0,
				5 * time.Second,
				30 * time.Second,
			},
		},
	}
}

// Global holds the global runtime configuration instance. It is
// initialized with defaults and can be overridden via environment
// variables.
var Global = initGlobal()

func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("REMINDME_SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Sweep.Interval = d
		}
	}
	if v := os.Getenv("REMINDME_SLEEP_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Sweep.SleepThreshold = d
		}
	}
	if v := os.Getenv("REMINDME_SNOOZE_OFFSET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Alert.SnoozeOffset = d
		}
	}
	if v := os.Getenv("REMINDME_OVERDUE_FIRE_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Alert.OverdueFireDelay = d
		}
	}
	if v := os.Getenv("REMINDME_MOTD_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Alert.MOTDDelay = d
		}
	}
	if v := os.Getenv("REMINDME_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = d
		}
	}
	if v := os.Getenv("REMINDME_HTTP_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.HTTP.MaxRetries = n
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults. Primarily for tests.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
