package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/termchat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show persisted settings",
	Long: `Show the persisted termchat settings.

Use 'termchat config set <key> <value>' to change a setting.
Available keys: theme, server_url, timeout, copy_to_clipboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a persisted setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(cmd, args[0], args[1])
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		cmd.Println(filepath.Join(dir, "config.json"))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}

func showConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		cmd.PrintErrf("Warning: config file unreadable, showing defaults (%v)\n", err)
	}

	cmd.Printf("theme              %s\n", cfg.ThemePreference())
	cmd.Printf("server_url         %s\n", cfg.ServerURL)
	cmd.Printf("timeout            %ds\n", cfg.RequestTimeoutSeconds)
	cmd.Printf("copy_to_clipboard  %t\n", cfg.CopyToClipboard)
	return nil
}

func setConfig(cmd *cobra.Command, key, value string) error {
	cfg, _ := config.LoadConfig()

	if err := applyConfigValue(&cfg, key, value); err != nil {
		return err
	}
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

// applyConfigValue validates and applies one key/value pair to cfg.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		v := strings.ToLower(value)
		if v != config.ThemeLight && v != config.ThemeDark {
			return fmt.Errorf("invalid theme %q: must be %q or %q",
				value, config.ThemeLight, config.ThemeDark)
		}
		cfg.Theme = v

	case "server_url":
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("invalid server_url %q: must start with http:// or https://", value)
		}
		cfg.ServerURL = value

	case "timeout":
		seconds, err := strconv.Atoi(strings.TrimSuffix(value, "s"))
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid timeout %q: must be a positive number of seconds", value)
		}
		cfg.RequestTimeoutSeconds = seconds

	case "copy_to_clipboard":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid copy_to_clipboard %q: must be true or false", value)
		}
		cfg.CopyToClipboard = enabled

	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
