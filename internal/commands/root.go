// Package commands provides CLI commands for termchat.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverFlag string
	outputFlag string
	fileFlag   string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "termchat [message]",
	Short: "Terminal client for a chat backend",
	Long: `termchat is a terminal client for a chat backend exposing a
single POST /chat endpoint. Messages are sent one at a time and the
assistant's reply is rendered as markdown.

Examples:
  termchat chat                     Start the interactive chat
  termchat config                   Show persisted settings
  termchat "What is Go?"            Send a single message
  termchat -f prompt.md             Read the message from a file
  cat prompt.md | termchat          Read the message from stdin
  termchat "Hello" -o reply.md      Save the reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check for version flag
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("termchat %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for file input
		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		// Check for positional argument
		if len(args) > 0 {
			return runQuery(args[0])
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "",
		"Chat backend base URL (overrides config)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}
