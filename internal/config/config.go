package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/nicorai/nicorai/internal/errors"
)

const (
	// EnvConfigDir overrides the config directory (default ~/.nicorai)
	EnvConfigDir = "NICORAI_CONFIG_DIR"
	// EnvTheme overrides the saved theme for one run
	EnvTheme = "NICORAI_THEME"

	DefaultCompactWidth           = 100
	DefaultResponseTimeoutSeconds = 30

	// ReservedViewID is used internally for fullscreen dynamic views and may
	// not name a navigable view.
	ReservedViewID = "dynamic-view"
)

// Config holds the application configuration
type Config struct {
	Theme                  string    `json:"theme,omitempty"`                    // UI theme name (e.g., "dark-blue", "nord")
	SidebarCollapsed       bool      `json:"sidebar_collapsed,omitempty"`        // Start with the navigation rail collapsed
	CompactWidth           int       `json:"compact_width,omitempty"`            // Columns below which the layout is compact
	NotificationsEnabled   bool      `json:"notifications_enabled,omitempty"`    // Desktop notification when a reply arrives unfocused
	ResponseTimeoutSeconds int       `json:"response_timeout_seconds,omitempty"` // Upper bound for one reply
	Views                  []NavView `json:"views,omitempty"`                    // Navigable views shown in the sidebar

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nicorai"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config with built-in defaults that is not backed by a file
func Default() *Config {
	cfg := &Config{}
	cfg.ensureInitialized()
	return cfg
}

// Load reads the config from the default location, or returns defaults if
// the file does not exist yet.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, apperrors.ConfigLoadFailed("config directory", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, apperrors.ConfigLoadFailed(path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, apperrors.ConfigLoadFailed(path, err)
		}
	}

	// Defaults must be filled in before Validate, which only reads.
	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if theme := os.Getenv(EnvTheme); theme != "" {
		cfg.Theme = theme
	}
	return cfg, nil
}

// ensureInitialized fills zero values with defaults. Only called before the
// config is shared.
func (c *Config) ensureInitialized() {
	if c.CompactWidth <= 0 {
		c.CompactWidth = DefaultCompactWidth
	}
	if c.ResponseTimeoutSeconds <= 0 {
		c.ResponseTimeoutSeconds = DefaultResponseTimeoutSeconds
	}
	if len(c.Views) == 0 {
		c.Views = DefaultViews()
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	for _, v := range c.Views {
		if v.ID == "" {
			return apperrors.ConfigInvalid("view with empty ID found")
		}
		if v.ID == ReservedViewID {
			return apperrors.ConfigInvalid(fmt.Sprintf("view ID %q is reserved", v.ID))
		}
		if seen[v.ID] {
			return apperrors.ConfigInvalid(fmt.Sprintf("duplicate view ID: %s", v.ID))
		}
		seen[v.ID] = true
	}
	if c.CompactWidth < 0 {
		return apperrors.ConfigInvalid("compact width must not be negative")
	}
	return nil
}

// Path returns the file the config is saved to
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		var err error
		if path, err = configPath(); err != nil {
			return apperrors.ConfigSaveFailed("config directory", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return apperrors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.ConfigSaveFailed(path, err)
	}
	return nil
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetSidebarExpanded returns whether the sidebar starts expanded
func (c *Config) GetSidebarExpanded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.SidebarCollapsed
}

// SetSidebarExpanded records the sidebar state
func (c *Config) SetSidebarExpanded(expanded bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SidebarCollapsed = !expanded
}

// GetCompactWidth returns the compact-layout breakpoint in columns
func (c *Config) GetCompactWidth() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.CompactWidth <= 0 {
		return DefaultCompactWidth
	}
	return c.CompactWidth
}

// SetCompactWidth sets the compact-layout breakpoint
func (c *Config) SetCompactWidth(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CompactWidth = width
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetResponseTimeout returns the reply timeout in seconds
func (c *Config) GetResponseTimeout() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ResponseTimeoutSeconds <= 0 {
		return DefaultResponseTimeoutSeconds
	}
	return c.ResponseTimeoutSeconds
}

// SetResponseTimeout sets the reply timeout in seconds
func (c *Config) SetResponseTimeout(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ResponseTimeoutSeconds = seconds
}
