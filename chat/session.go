// Package chat implements the interactive assistant session: the
// read-eval-print loop, the conversation history, slash-command handling,
// and the local/remote response dispatch.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gochatcli/rules"
)

// Mode is the session-wide choice between local rule-based answers and the
// remote completion API. It is resolved once at startup and never changes
// mid-session.
type Mode int

const (
	// ModeLocal answers from the rule table.
	ModeLocal Mode = iota
	// ModeRemote answers via the OpenAI completion API.
	ModeRemote
)

// String returns the mode name as reported by /mode.
func (m Mode) String() string {
	if m == ModeRemote {
		return "openai"
	}
	return "local"
}

// DetectMode resolves the session mode from the API credential: remote if
// the credential is non-empty, local otherwise.
func DetectMode(apiKey string) Mode {
	if apiKey != "" {
		return ModeRemote
	}
	return ModeLocal
}

// RemoteErrorReply is recorded and printed in place of the assistant reply
// when the remote completion call fails for any reason.
const RemoteErrorReply = "OpenAI request failed. Please try again."

// DefaultRemoteTimeout bounds each remote completion call.
const DefaultRemoteTimeout = 30 * time.Second

// Completer is the outbound completion call: text in, text or error out.
// Transport details belong to the implementation.
type Completer interface {
	Complete(ctx context.Context, text string) (string, error)
}

// responder produces one assistant reply for one user message. The
// concrete responder is chosen once at session construction from the mode.
type responder interface {
	respond(ctx context.Context, text string) (string, error)
}

// localResponder answers from the rule table. It never fails.
type localResponder struct {
	table *rules.Table
}

func (r localResponder) respond(_ context.Context, text string) (string, error) {
	return r.table.Match(text), nil
}

// remoteResponder answers via the completion API.
type remoteResponder struct {
	client Completer
}

func (r remoteResponder) respond(ctx context.Context, text string) (string, error) {
	return r.client.Complete(ctx, text)
}

var (
	promptStyle    = lipgloss.NewStyle().Bold(true)
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	noticeStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Session owns the conversation state for one interactive run: the mode,
// the history, and the responder. It is single-threaded; Run blocks on
// input, computes a reply, prints it, and blocks again.
type Session struct {
	cfg       *Config
	mode      Mode
	table     *rules.Table
	responder responder
	history   History
	timeout   time.Duration

	in  io.Reader
	out io.Writer
}

// NewSession builds a session. remote may be nil when mode is local; it is
// only consulted in remote mode.
func NewSession(cfg *Config, mode Mode, remote Completer, in io.Reader, out io.Writer) *Session {
	s := &Session{
		cfg:     cfg,
		mode:    mode,
		table:   cfg.RuleTable(),
		timeout: DefaultRemoteTimeout,
		in:      in,
		out:     out,
	}
	if mode == ModeRemote {
		s.responder = remoteResponder{client: remote}
	} else {
		s.responder = localResponder{table: s.table}
	}
	return s
}

// Mode returns the session mode resolved at construction.
func (s *Session) Mode() Mode {
	return s.mode
}

// History returns the conversation log owned by the session.
func (s *Session) History() *History {
	return &s.history
}

// Answer handles one ordinary (non-command) message: it records the user
// entry, produces a reply from the active responder, records the
// assistant entry, and returns the reply. A failed remote call substitutes
// RemoteErrorReply; the turn is still recorded and the error never
// escapes.
func (s *Session) Answer(text string) string {
	s.history.Append(SpeakerUser, text)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	reply, err := s.responder.respond(ctx, text)
	if err != nil {
		reply = RemoteErrorReply
	}

	s.history.Append(SpeakerAssistant, reply)
	return reply
}

// Run drives the read-eval-print loop until /exit or end of input. It
// returns nil on a normal exit; a non-nil error indicates an input stream
// failure below normal EOF.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Small CLI assistant. Type /help for commands. (Ctrl-D or /exit to quit)")
	if s.mode == ModeRemote {
		fmt.Fprintln(s.out, noticeStyle.Render("OpenAI mode enabled."))
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, promptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if handled, exit := s.runCommand(input); handled {
			if exit {
				return nil
			}
			continue
		}

		reply := s.Answer(input)
		fmt.Fprintln(s.out, assistantStyle.Render("Assistant: ")+reply)
	}

	return scanner.Err()
}
