package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/render"
)

var (
	colorSuccess = lipgloss.Color("#1a7f37")
	colorFailure = lipgloss.Color("#dc2626")
	colorDim     = lipgloss.Color("#6b7280")
	colorLabel   = lipgloss.Color("#2563eb")
)

// Styles matching the chat TUI
var (
	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorLabel).
				Bold(true)

	assistantBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorLabel).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)
)

// querySpinner handles the animated loading indicator for one-shot queries
type querySpinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	stopped bool // Flag to prevent double-close
}

func newQuerySpinner(message string) *querySpinner {
	return &querySpinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation
func (s *querySpinner) start() {
	go func() {
		defer close(s.done)

		frames := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(os.Stderr, "\033[?25l")

		frame := 0
		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(os.Stderr, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				mark := lipgloss.NewStyle().Foreground(colorLabel).Bold(true).
					Render(frames[frame%len(frames)])
				msg := lipgloss.NewStyle().Foreground(colorDim).Render(s.message)
				fmt.Fprintf(os.Stderr, "\r\033[K%s %s", mark, msg)
				frame++
			}
		}
	}()
}

// stopOnce safely closes the stop channel only once
func (s *querySpinner) stopOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		close(s.stop)
		s.stopped = true
	}
}

// stopWithSuccess stops the spinner and shows a success message
func (s *querySpinner) stopWithSuccess(message string) {
	s.stopOnce()
	<-s.done

	check := lipgloss.NewStyle().Foreground(colorSuccess).Bold(true).Render("✓")
	msg := lipgloss.NewStyle().Foreground(colorSuccess).Render(message)
	fmt.Fprintf(os.Stderr, "%s %s\n", check, msg)
}

// stopWithError stops the spinner silently
func (s *querySpinner) stopWithError() {
	s.stopOnce()
	<-s.done
}

// runQuery sends a single message and prints the reply. When stdout is not
// a terminal only the raw reply text is written, so the command pipes
// cleanly.
func runQuery(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return fmt.Errorf("message cannot be empty")
	}

	cfg := loadSettings()
	render.SetTUITheme(cfg.ThemePreference())

	client, err := newChatClient(cfg)
	if err != nil {
		return err
	}

	decorated := isStdoutTTY()

	var spin *querySpinner
	if decorated {
		spin = newQuerySpinner("Waiting for reply")
		spin.start()
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	defer cancel()

	reply, err := client.SendMessage(ctx, message)
	if err != nil {
		if decorated {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Request failed"))
		}
		return fmt.Errorf("request failed: %w", err)
	}
	if decorated {
		spin.stopWithSuccess("Done")
	}

	// Raw output mode: only the reply text
	if !decorated {
		if outputFlag != "" {
			return writeReplyFile(reply)
		}
		fmt.Print(reply)
		return nil
	}

	if cfg.CopyToClipboard {
		if err := clipboard.WriteAll(reply); err != nil {
			warn := lipgloss.NewStyle().Foreground(colorFailure).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err))
			fmt.Fprintln(os.Stderr, warn)
		} else {
			note := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard")
			fmt.Fprintln(os.Stderr, note)
		}
	}

	if outputFlag != "" {
		if err := writeReplyFile(reply); err != nil {
			return err
		}
		note := lipgloss.NewStyle().Foreground(colorSuccess).Render(
			fmt.Sprintf("✓ Reply saved to %s", outputFlag))
		fmt.Fprintln(os.Stderr, note)
		return nil
	}

	bubbleWidth := queryBubbleWidth(getTerminalWidth())
	contentWidth := bubbleWidth - 4

	fmt.Println(assistantLabelStyle.Render("✦ Assistant"))

	opts := render.LoadOptionsFromConfig(cfg).WithWidth(contentWidth)
	rendered, err := render.Markdown(reply, opts)
	if err != nil {
		rendered = reply
	}
	rendered = strings.TrimRight(rendered, "\n")

	fmt.Println(assistantBubbleStyle.Width(bubbleWidth).Render(rendered))

	return nil
}

func writeReplyFile(reply string) error {
	if err := os.WriteFile(outputFlag, []byte(reply), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// queryBubbleWidth clamps the reply bubble to a readable width
func queryBubbleWidth(termWidth int) int {
	width := termWidth - 4
	if width < 40 {
		return 40
	}
	if width > 120 {
		return 120
	}
	return width
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorFailure)
	dimStyle := lipgloss.NewStyle().Foreground(colorDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %s", context, apierrors.FailureReason(err))))

	if status := apierrors.GetHTTPStatus(err); status > 0 {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  HTTP Status: %d", status)))
	}

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}

	if apierrors.IsRequestError(err) {
		sb.WriteString(dimStyle.Render("\n  Hint: Check that the backend is running and reachable"))
	}

	return sb.String()
}
