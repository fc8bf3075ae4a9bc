package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, 10*time.Second, cfg.Sweep.Interval)
	assert.Equal(t, time.Hour, cfg.Sweep.SleepThreshold)
	assert.Equal(t, 10*time.Minute, cfg.Alert.SnoozeOffset)
	assert.Equal(t, time.Second, cfg.Alert.OverdueFireDelay)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
}

func TestRuntimeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REMINDME_SWEEP_INTERVAL", "5s")
	t.Setenv("REMINDME_SNOOZE_OFFSET", "2m")
	t.Setenv("REMINDME_HTTP_MAX_RETRIES", "1")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 5*time.Second, cfg.Sweep.Interval)
	assert.Equal(t, 2*time.Minute, cfg.Alert.SnoozeOffset)
	assert.Equal(t, 1, cfg.HTTP.MaxRetries)
}

func TestRuntimeConfig_BadEnvIgnored(t *testing.T) {
	t.Setenv("REMINDME_SWEEP_INTERVAL", "often")
	t.Setenv("REMINDME_HTTP_MAX_RETRIES", "-3")

	cfg := DefaultRuntimeConfig()
	cfg.ReloadFromEnv()

	assert.Equal(t, 10*time.Second, cfg.Sweep.Interval)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Endpoints)
	assert.Empty(t, cfg.EnabledWebhooks())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"webhooks": [
			{"name": "team", "type": "slack", "url": "https://hooks.example/abc", "enabled": true},
			{"name": "old", "type": "discord", "url": "https://hooks.example/def", "enabled": false}
		],
		"default_category": "work",
		"default_priority": "high"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Endpoints, 2)
	assert.Equal(t, "work", cfg.DefaultCategory)
	assert.Equal(t, "high", cfg.DefaultPriority)

	enabled := cfg.EnabledWebhooks()
	require.Len(t, enabled, 1)
	assert.Equal(t, "team", enabled[0].Name)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
