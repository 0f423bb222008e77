// Package config handles persisted user settings for termchat.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Theme preference values. Anything else stored on disk is treated as the
// default.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultServerURL points at the chat backend's default local address.
const DefaultServerURL = "http://localhost:8000"

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	EnableEmoji      bool `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool `json:"preserve_newlines"` // Preserve original line breaks
	TableWrap        bool `json:"table_wrap"`        // Enable word wrap in table cells
}

// Config represents the user configuration
type Config struct {
	// ServerURL is the base URL of the chat backend exposing POST /chat.
	ServerURL string `json:"server_url"`
	// Theme is the visual mode, "light" or "dark". Absent means light.
	Theme string `json:"theme,omitempty"`
	// RequestTimeoutSeconds bounds a single /chat request. Zero or negative
	// values fall back to the default.
	RequestTimeoutSeconds int `json:"request_timeout_seconds"`
	// CopyToClipboard copies one-shot query responses to the clipboard.
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ServerURL:             DefaultServerURL,
		Theme:                 ThemeLight,
		RequestTimeoutSeconds: 120,
		CopyToClipboard:       false,
		Markdown:              DefaultMarkdownConfig(),
	}
}

// ThemePreference returns the stored theme, normalized: anything that is not
// exactly "dark" (including absent or corrupt values) reads as light.
func (c Config) ThemePreference() string {
	if c.Theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".termchat"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults silently; an unreadable or corrupt file yields the defaults with
// an error, so callers can proceed either way.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = DefaultConfig().RequestTimeoutSeconds
	}
	cfg.Theme = cfg.ThemePreference()

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
