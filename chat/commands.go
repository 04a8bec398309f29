package chat

import (
	"fmt"
	"strings"
)

// CommandInfo describes one slash-command for help and listing output.
type CommandInfo struct {
	Name        string
	Description string
}

// Commands returns the slash-commands the session understands, in display
// order.
func Commands() []CommandInfo {
	return []CommandInfo{
		{Name: "/help", Description: "Show this help"},
		{Name: "/history", Description: "Show the last interactions"},
		{Name: "/mode", Description: "Show current mode (local or openai)"},
		{Name: "/exit", Description: "Exit the assistant"},
	}
}

// HelpText returns the static usage text printed by /help.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, c := range Commands() {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", c.Name, c.Description))
	}
	b.WriteString("You can also ask normal questions. Prefix with 'echo ' to echo text.")
	return b.String()
}

// commandAliases maps bare words to their slash forms, matching the
// original behavior where "exit" and "/exit" are interchangeable.
var commandAliases = map[string]string{
	"exit":    "/exit",
	"help":    "/help",
	"history": "/history",
	"mode":    "/mode",
}

// runCommand intercepts control directives before mode dispatch. It
// returns handled=false for ordinary conversational input. Command turns
// never touch the history.
func (s *Session) runCommand(input string) (handled, exit bool) {
	name := strings.ToLower(input)
	if alias, ok := commandAliases[name]; ok {
		name = alias
	}
	if !strings.HasPrefix(name, "/") {
		return false, false
	}

	switch name {
	case "/exit":
		return true, true
	case "/help":
		fmt.Fprintln(s.out, HelpText())
	case "/history":
		s.printHistory()
	case "/mode":
		fmt.Fprintln(s.out, s.mode.String())
	default:
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Unknown command: %s (try /help)", input)))
	}
	return true, false
}

// printHistory renders the last DefaultHistoryTail entries in
// chronological order.
func (s *Session) printHistory() {
	tail := s.history.Tail(DefaultHistoryTail)
	if len(tail) == 0 {
		fmt.Fprintln(s.out, noticeStyle.Render("No history yet."))
		return
	}
	for _, e := range tail {
		label := promptStyle.Render(e.Speaker.Label() + ": ")
		if e.Speaker == SpeakerAssistant {
			label = assistantStyle.Render(e.Speaker.Label() + ": ")
		}
		fmt.Fprintln(s.out, label+e.Text)
	}
}
