package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/manav03panchal/remindme/internal/errors"
)

// Webhook describes a configured notification endpoint.
type Webhook struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // discord, slack, generic
	URL      string `json:"url"`
	Template string `json:"template,omitempty"` // generic only
	Enabled  bool   `json:"enabled"`
}

// FileConfig is the on-disk configuration. Reminders themselves are
// never persisted; this covers only delivery endpoints and session
// defaults.
type FileConfig struct {
	Path            string    `json:"-"` // resolved path, for diagnostics
	Endpoints       []Webhook `json:"webhooks,omitempty"`
	DefaultCategory string    `json:"default_category,omitempty"`
	DefaultPriority string    `json:"default_priority,omitempty"`
}

// DefaultPath returns the XDG config file path for RemindMe.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "remindme", "config.json")
}

// LoadFile reads the config file at path. A missing file yields an
// empty config, not an error.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{Path: path}, nil
		}
		return nil, errors.NewSystemError("failed to read config file", err)
	}

	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewSystemError("failed to parse config file", err)
	}
	cfg.Path = path

	return &cfg, nil
}

// EnabledWebhooks returns the webhooks marked enabled.
func (c *FileConfig) EnabledWebhooks() []Webhook {
	var enabled []Webhook
	for _, w := range c.Endpoints {
		if w.Enabled {
			enabled = append(enabled, w)
		}
	}
	return enabled
}
