package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/diogo/termchat/internal/api"
	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/render"
	"github.com/diogo/termchat/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session against the configured backend.

Type 'exit', 'quit', or press Ctrl+C to end the session.
Press Ctrl+T to toggle between the light and dark theme.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfg := loadSettings()

	// Activate the persisted theme before the first frame renders.
	render.SetTUITheme(cfg.ThemePreference())
	tui.UpdateTheme()

	client, err := newChatClient(cfg)
	if err != nil {
		return err
	}

	return tui.RunChat(client, cfg)
}

// loadSettings loads persisted config and applies CLI overrides. A corrupt
// config file falls back to defaults so the client always starts.
func loadSettings() config.Config {
	cfg, _ := config.LoadConfig()
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	return cfg
}

// newChatClient builds the HTTP client for the configured backend.
func newChatClient(cfg config.Config) (*api.Client, error) {
	client, err := api.NewClient(cfg.ServerURL,
		api.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}
