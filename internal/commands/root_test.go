package commands

import (
	"testing"
)

func TestRootCommand_Help(t *testing.T) {
	if rootCmd.Use != "termchat [message]" {
		t.Errorf("Expected use 'termchat [message]', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	if rootCmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestRootCommand_Args(t *testing.T) {
	// Argument validation (cobra.MaximumNArgs(1)) is handled by Cobra.
	if rootCmd.Args == nil {
		t.Error("Args validation should be configured")
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	t.Run("server flag (persistent)", func(t *testing.T) {
		flag := rootCmd.PersistentFlags().Lookup("server")
		if flag == nil {
			t.Error("PersistentFlag server not found")
		}
	})

	localFlags := []string{"output", "file", "version"}
	for _, flagName := range localFlags {
		t.Run(flagName+" flag", func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(flagName)
			if flag == nil {
				t.Errorf("Flag %s not found", flagName)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{"chat": false, "config": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLoadSettings_ServerFlagOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	defer func() { serverFlag = "" }()

	serverFlag = ""
	cfg := loadSettings()
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("default ServerURL = %q", cfg.ServerURL)
	}

	serverFlag = "http://example.com:9000"
	cfg = loadSettings()
	if cfg.ServerURL != "http://example.com:9000" {
		t.Errorf("overridden ServerURL = %q", cfg.ServerURL)
	}
}
