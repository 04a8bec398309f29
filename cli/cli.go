// cli/cli.go

// Package cli wires the assistant together for interactive use: it
// resolves configuration and the API credential, builds a chat session,
// and runs either the plain terminal REPL or the Bubble Tea interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"

	"github.com/mwiater/gochatcli/chat"
	"github.com/mwiater/gochatcli/internal/llm"
)

// NewSession resolves configuration and environment once and constructs
// the chat session around the given streams. The mode is fixed here and
// never re-read during the session.
func NewSession(configPath string, in io.Reader, out io.Writer) (*chat.Session, error) {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := chat.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if m := os.Getenv("OPENAI_MODEL"); m != "" {
		cfg.Model = m
	}
	if cfg.Debug {
		pp.Println(cfg)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	mode := chat.DetectMode(apiKey)

	var remote chat.Completer
	if mode == chat.ModeRemote {
		remote = llm.NewClient(apiKey, cfg.Model)
	}

	return chat.NewSession(cfg, mode, remote, in, out), nil
}

// StartREPL runs the line-oriented session on stdin/stdout until /exit or
// end of input.
func StartREPL(configPath string) error {
	session, err := NewSession(configPath, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	return session.Run()
}

// ListModels prints the completion models the configured API key can
// access. It requires remote mode; in local mode there is nothing to
// list.
func ListModels(configPath string, out io.Writer) error {
	_ = godotenv.Load()

	cfg, err := chat.LoadConfig(configPath)
	if err != nil {
		return err
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if chat.DetectMode(apiKey) != chat.ModeRemote {
		fmt.Fprintln(out, "Local mode: no remote models available. Set OPENAI_API_KEY to list API models.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), chat.DefaultRemoteTimeout)
	defer cancel()

	models, err := llm.NewClient(apiKey, cfg.Model).ListModels(ctx)
	if err != nil {
		return err
	}

	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	fmt.Fprintln(out, "Available models:")
	for _, m := range models {
		if m == cfg.Model {
			fmt.Fprintln(out, "  "+activeStyle.Render(m)+" (configured)")
			continue
		}
		fmt.Fprintln(out, "  "+m)
	}
	return nil
}

// StartGUI runs the Bubble Tea chat interface over the same session core.
func StartGUI(configPath string) error {
	session, err := NewSession(configPath, strings.NewReader(""), io.Discard)
	if err != nil {
		return err
	}

	m := initialModel(session)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// replyMsg is sent when the session has produced an assistant reply.
type replyMsg string

// noticeMsg is sent for command output shown inline in the transcript.
type noticeMsg string

// tickMsg is a regular tick message used while a reply is pending.
type tickMsg time.Time

// guiModel is the Bubble Tea model for the chat interface. All session
// access happens from commands issued one at a time; the view renders a
// local transcript mirror.
type guiModel struct {
	session *chat.Session

	textArea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	transcript []chat.Entry
	notices    map[int]string // notice lines keyed by transcript position
	isLoading  bool

	width, height    int
	requestStartTime time.Time
}

// initialModel sets up the textarea, viewport, and spinner the way the
// chat view expects them.
func initialModel(session *chat.Session) *guiModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "Send a message..."
	ta.Focus()
	ta.Prompt = "Ask Anything: "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(100, 5)

	return &guiModel{
		session:  session,
		spinner:  s,
		textArea: ta,
		viewport: vp,
		notices:  map[int]string{},
	}
}

// answerCmd runs one session turn off the UI loop and delivers the reply.
func answerCmd(session *chat.Session, text string) tea.Cmd {
	return func() tea.Msg {
		return replyMsg(session.Answer(text))
	}
}

// tickCmd returns a command that sends a tickMsg at a regular interval,
// keeping the elapsed-time display moving while a reply is pending.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the spinner animation.
func (m *guiModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and advances the chat state.
func (m *guiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "enter":
			if m.isLoading {
				return m, nil
			}
			input := strings.TrimSpace(m.textArea.Value())
			if input == "" {
				return m, nil
			}
			m.textArea.Reset()
			if quit, commandCmd := m.handleCommand(input); quit {
				return m, tea.Quit
			} else if commandCmd != nil {
				return m, commandCmd
			}
			m.transcript = append(m.transcript, chat.Entry{Speaker: chat.SpeakerUser, Text: input})
			m.isLoading = true
			m.requestStartTime = time.Now()
			return m, tea.Batch(m.spinner.Tick, answerCmd(m.session, input), tickCmd())
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textArea.SetWidth(msg.Width - 3)
		headerHeight := 4
		footerHeight := 5
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight

	case replyMsg:
		m.transcript = append(m.transcript, chat.Entry{Speaker: chat.SpeakerAssistant, Text: string(msg)})
		m.isLoading = false
		m.textArea.Focus()
		m.viewport.GotoBottom()
		return m, nil

	case noticeMsg:
		pos := len(m.transcript)
		if existing, ok := m.notices[pos]; ok {
			m.notices[pos] = existing + "\n" + string(msg)
		} else {
			m.notices[pos] = string(msg)
		}
		return m, nil

	case tickMsg:
		if m.isLoading {
			return m, tickCmd()
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	m.textArea, cmd = m.textArea.Update(msg)
	cmds = append(cmds, cmd)

	if m.isLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleCommand intercepts slash-commands typed into the TUI. It returns
// quit=true for /exit; other recognized commands surface their output as
// a notice line in the transcript.
func (m *guiModel) handleCommand(input string) (quit bool, cmd tea.Cmd) {
	if !strings.HasPrefix(input, "/") {
		return false, nil
	}
	switch strings.ToLower(input) {
	case "/exit":
		return true, nil
	case "/help":
		return false, func() tea.Msg { return noticeMsg(chat.HelpText()) }
	case "/mode":
		return false, func() tea.Msg { return noticeMsg("mode: " + m.session.Mode().String()) }
	case "/history":
		// The transcript already shows the conversation.
		return false, func() tea.Msg { return noticeMsg("History is shown above.") }
	default:
		return false, func() tea.Msg { return noticeMsg("Unknown command: " + input + " (try /help)") }
	}
}

// View renders the chat interface.
func (m *guiModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.chatView()
}

// chatView renders the header, transcript, and the input area or spinner.
func (m *guiModel) chatView() string {
	var builder strings.Builder

	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	modeInfo := fmt.Sprintf("Mode: %s", m.session.Mode())
	help := lipgloss.NewStyle().Faint(true).Render(" (/help for commands, ctrl+c to quit)")
	builder.WriteString(headerStyle.Render(modeInfo) + help + "\n\n")

	var historyBuilder strings.Builder
	userStyle := lipgloss.NewStyle().Bold(true)
	assistantStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	noticeStyle := lipgloss.NewStyle().Faint(true)

	for i, entry := range m.transcript {
		if notice, ok := m.notices[i]; ok {
			historyBuilder.WriteString(noticeStyle.Render(notice) + "\n")
		}
		role := userStyle.Render(entry.Speaker.Label() + ": ")
		if entry.Speaker == chat.SpeakerAssistant {
			role = assistantStyle.Render(entry.Speaker.Label() + ": ")
		}
		wrapped := lipgloss.NewStyle().Width(m.width - lipgloss.Width(role) - 2).Render(entry.Text)
		historyBuilder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, role, wrapped) + "\n")
	}
	if notice, ok := m.notices[len(m.transcript)]; ok {
		historyBuilder.WriteString(noticeStyle.Render(notice) + "\n")
	}

	m.viewport.SetContent(historyBuilder.String())
	builder.WriteString(m.viewport.View())

	if m.isLoading {
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		builder.WriteString("\n" + m.spinner.View() + fmt.Sprintf(" Assistant is thinking... %ss", timer))
	} else {
		builder.WriteString("\n" + m.textArea.View())
	}

	return builder.String()
}
