package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/termchat/internal/api"
	"github.com/diogo/termchat/internal/config"
	"github.com/diogo/termchat/internal/conversation"
	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/render"
)

// nearBottomRows is the scroll distance, in viewport rows, under which the
// transcript counts as caught up and the jump-to-latest bar stays hidden.
const nearBottomRows = 4

// Message types for the TUI
type (
	chatResponseMsg struct {
		reply string
	}
	chatErrorMsg struct {
		err error
	}
)

// Model represents the TUI state
type Model struct {
	client api.ChatClientInterface
	cfg    config.Config

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	transcript   *conversation.Transcript
	loading      bool
	typingHandle conversation.Handle
	ready        bool

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client api.ChatClientInterface, cfg config.Config) Model {
	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner: three animated markers for the typing indicator
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:     client,
		cfg:        cfg,
		textarea:   ta,
		spinner:    s,
		transcript: conversation.New(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate component heights
		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 2 // Status bar plus jump affordance line
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			return m, tea.Quit

		case "ctrl+t":
			m = m.toggleTheme()
			return m, nil

		case "ctrl+y":
			m.copyLastReply()
			return m, nil

		case "end":
			m.viewport.GotoBottom()
			return m, nil

		case "enter":
			// Sends are serialized: enter during an in-flight request is
			// ignored. Typing stays live either way.
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			// Add user message and the typing indicator
			m.transcript.Append(conversation.Message{
				Author: conversation.AuthorUser,
				Text:   input,
			})
			m.typingHandle = m.transcript.AppendTyping()
			m.textarea.Reset()
			m.refreshViewport()
			m.viewport.GotoBottom()

			m.loading = true
			return m, tea.Batch(
				m.sendMessage(input),
				m.spinner.Tick,
			)
		}

	case chatResponseMsg:
		m.loading = false
		m.transcript.Remove(m.typingHandle)
		m.transcript.Append(conversation.Message{
			Author: conversation.AuthorBot,
			Text:   msg.reply,
		})
		m.refreshViewport()
		m.viewport.GotoBottom()

	case chatErrorMsg:
		// Failures surface as a bot-authored message, never as a crash.
		m.loading = false
		m.transcript.Remove(m.typingHandle)
		m.transcript.Append(conversation.Message{
			Author: conversation.AuthorBot,
			Text:   "Error: " + apierrors.FailureReason(msg.err),
		})
		m.refreshViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.refreshViewport()
		}
	}

	// Update child components - only pass KeyMsg to textarea to prevent
	// escape sequence leaks. Input stays editable during an in-flight
	// request.
	if _, ok := msg.(tea.KeyMsg); ok {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4
	theme := render.GetTUITheme()

	// Header: title, backend address, theme toggle glyph
	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render("✦ termchat"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.BaseURL()),
		hintStyle.Render("  •  "),
		themeGlyphStyle.Render(theme.ToggleGlyph),
	)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Messages area
	var messagesContent string
	if m.transcript.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	// Jump-to-latest affordance, re-evaluated on every render
	if !m.isNearBottom(nearBottomRows) {
		sections = append(sections, jumpLatestStyle.
			Width(contentWidth).
			Render("↓ End jumps to latest"))
	}

	// Input area
	inputContent := lipgloss.JoinVertical(
		lipgloss.Left,
		inputLabelStyle.Render("You"),
		m.textarea.View(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("Welcome to termchat")
	subtitle := welcomeStyle.Width(width).Render("Start a conversation by typing a message below")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+T", "Theme"},
		{"End", "Latest"},
		{"Ctrl+Y", "Copy"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := strings.Join(items, "  │  ")
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// sendMessage creates a command that posts one message to the backend.
// The request carries a timeout so a hung backend cannot strand the
// typing indicator.
func (m Model) sendMessage(text string) tea.Cmd {
	timeout := time.Duration(m.cfg.RequestTimeoutSeconds) * time.Second
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reply, err := client.SendMessage(ctx, text)
		if err != nil {
			return chatErrorMsg{err: err}
		}
		return chatResponseMsg{reply: reply}
	}
}

// toggleTheme flips the palette, rebuilds styles, persists the preference
// and re-renders the transcript. Persistence is best-effort.
func (m Model) toggleTheme() Model {
	theme := render.ToggleTUITheme()
	UpdateTheme()
	m.spinner.Style = loadingStyle

	m.cfg.Theme = theme.Name
	_ = config.SaveConfig(m.cfg)

	m.refreshViewport()
	return m
}

// copyLastReply copies the most recent bot message to the clipboard.
func (m Model) copyLastReply() {
	msgs := m.transcript.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Author == conversation.AuthorBot {
			_ = clipboard.WriteAll(msgs[i].Text)
			return
		}
	}
}

// isNearBottom reports whether the viewport is within rows of the end of
// the transcript.
func (m Model) isNearBottom(rows int) bool {
	if !m.ready {
		return true
	}
	linesBelow := m.viewport.TotalLineCount() - (m.viewport.YOffset + m.viewport.Height)
	return linesBelow < rows
}

// refreshViewport rebuilds the viewport content from the transcript.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, entry := range m.transcript.Entries() {
		if i > 0 {
			content.WriteString("\n")
		}

		switch {
		case entry.Typing:
			label := botLabelStyle.Render("✦ Assistant")
			bubble := botBubbleStyle.Width(bubbleWidth).Render(
				m.spinner.View() + typingStyle.Render(" typing"),
			)
			content.WriteString(label + "\n" + bubble)

		case entry.Message.Author == conversation.AuthorUser:
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(entry.Message.Text)
			content.WriteString(label + "\n" + bubble)

		default:
			label := botLabelStyle.Render("✦ Assistant")
			text := entry.Message.Text
			if strings.HasPrefix(text, "Error: ") {
				bubble := botBubbleStyle.Width(bubbleWidth).Render(
					errorTextStyle.Render("⚠ " + text),
				)
				content.WriteString(label + "\n" + bubble)
				break
			}

			rendered, err := render.MarkdownWithWidth(text, bubbleWidth-4)
			if err != nil {
				rendered = text
			}
			rendered = strings.TrimRight(rendered, "\n")

			bubble := botBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client api.ChatClientInterface, cfg config.Config) error {
	m := NewChatModel(client, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
