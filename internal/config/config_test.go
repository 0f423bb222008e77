package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointHomeAt redirects the config directory to a temp dir for the test.
func pointHomeAt(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	// os.UserHomeDir consults USERPROFILE on Windows.
	t.Setenv("USERPROFILE", tmp)
	return tmp
}

func TestLoadConfigDefaults(t *testing.T) {
	pointHomeAt(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig with no file: %v", err)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("default theme = %q, want %q", cfg.Theme, ThemeLight)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("default server URL = %q, want %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.RequestTimeoutSeconds != 120 {
		t.Errorf("default timeout = %d, want 120", cfg.RequestTimeoutSeconds)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	pointHomeAt(t)

	cfg := DefaultConfig()
	cfg.Theme = ThemeDark
	cfg.ServerURL = "http://example.com:9000"
	cfg.CopyToClipboard = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Theme != ThemeDark {
		t.Errorf("theme = %q, want %q", loaded.Theme, ThemeDark)
	}
	if loaded.ServerURL != "http://example.com:9000" {
		t.Errorf("server URL = %q", loaded.ServerURL)
	}
	if !loaded.CopyToClipboard {
		t.Error("copy_to_clipboard not persisted")
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	tmp := pointHomeAt(t)

	dir := filepath.Join(tmp, ".termchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("expected an error for corrupt config")
	}
	// Corrupt data must still yield usable defaults.
	if cfg.Theme != ThemeLight {
		t.Errorf("corrupt config theme = %q, want light default", cfg.Theme)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("corrupt config server URL = %q, want default", cfg.ServerURL)
	}
}

func TestThemePreferenceNormalization(t *testing.T) {
	tests := []struct {
		stored string
		want   string
	}{
		{"dark", ThemeDark},
		{"light", ThemeLight},
		{"", ThemeLight},
		{"DARK", ThemeLight},
		{"solarized", ThemeLight},
	}

	for _, tt := range tests {
		t.Run("stored="+tt.stored, func(t *testing.T) {
			cfg := Config{Theme: tt.stored}
			if got := cfg.ThemePreference(); got != tt.want {
				t.Errorf("ThemePreference() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadConfigClampsTimeout(t *testing.T) {
	tmp := pointHomeAt(t)

	dir := filepath.Join(tmp, ".termchat")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	raw := []byte(`{"server_url": "http://localhost:8000", "request_timeout_seconds": -5}`)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.RequestTimeoutSeconds != 120 {
		t.Errorf("timeout = %d, want clamped default 120", cfg.RequestTimeoutSeconds)
	}
}
