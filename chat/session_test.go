package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mwiater/gochatcli/rules"
)

// fakeCompleter scripts the remote completion call for tests.
type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newLocalSession(in string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := NewSession(&Config{Model: DefaultModel}, ModeLocal, nil, strings.NewReader(in), &out)
	return s, &out
}

func TestDetectMode(t *testing.T) {
	if DetectMode("") != ModeLocal {
		t.Error("empty credential should select local mode")
	}
	if DetectMode("sk-something") != ModeRemote {
		t.Error("non-empty credential should select remote mode")
	}
	if ModeLocal.String() != "local" || ModeRemote.String() != "openai" {
		t.Error("unexpected mode names")
	}
}

func TestAnswer_LocalTurnGrowsHistoryByTwo(t *testing.T) {
	s, _ := newLocalSession("")

	reply := s.Answer("hi")
	if reply == rules.Fallback {
		t.Errorf("expected greeting, got fallback")
	}

	entries := s.History().Entries()
	if len(entries) != 2 {
		t.Fatalf("history length = %d, want 2", len(entries))
	}
	if entries[0].Speaker != SpeakerUser || entries[0].Text != "hi" {
		t.Errorf("unexpected user entry: %+v", entries[0])
	}
	if entries[1].Speaker != SpeakerAssistant || entries[1].Text != reply {
		t.Errorf("unexpected assistant entry: %+v", entries[1])
	}
}

func TestAnswer_UnmatchedInputRecordsFallback(t *testing.T) {
	s, _ := newLocalSession("")

	if got := s.Answer("asdkjasd"); got != rules.Fallback {
		t.Errorf("reply = %q, want fallback", got)
	}
	if s.History().Len() != 2 {
		t.Errorf("history length = %d, want 2", s.History().Len())
	}
}

func TestAnswer_RemoteSuccess(t *testing.T) {
	fake := &fakeCompleter{reply: "Hello from the API."}
	var out bytes.Buffer
	s := NewSession(&Config{Model: DefaultModel}, ModeRemote, fake, strings.NewReader(""), &out)

	if got := s.Answer("hello"); got != "Hello from the API." {
		t.Errorf("reply = %q", got)
	}
	if fake.calls != 1 {
		t.Errorf("completer called %d times", fake.calls)
	}
	if s.History().Len() != 2 {
		t.Errorf("history length = %d, want 2", s.History().Len())
	}
}

func TestAnswer_RemoteFailureSubstitutesErrorReply(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	var out bytes.Buffer
	s := NewSession(&Config{Model: DefaultModel}, ModeRemote, fake, strings.NewReader(""), &out)

	if got := s.Answer("hello"); got != RemoteErrorReply {
		t.Errorf("reply = %q, want substituted error reply", got)
	}

	entries := s.History().Entries()
	if len(entries) != 2 || entries[1].Text != RemoteErrorReply {
		t.Errorf("failed turn not recorded: %+v", entries)
	}
}

func TestRun_ExitCommandStopsLoop(t *testing.T) {
	s, out := newLocalSession("hi\n/exit\nnever read\n")

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.History().Len() != 2 {
		t.Errorf("history length = %d, want 2", s.History().Len())
	}
	if strings.Contains(out.String(), "never read") {
		t.Error("loop kept reading past /exit")
	}
}

func TestRun_EOFStopsLoop(t *testing.T) {
	s, _ := newLocalSession("hi\n")

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.History().Len() != 2 {
		t.Errorf("history length = %d, want 2", s.History().Len())
	}
}

func TestRun_CommandTurnsLeaveHistoryUnchanged(t *testing.T) {
	s, out := newLocalSession("/help\n/mode\n/history\n/bogus\nhelp\n/exit\n")

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.History().Len() != 0 {
		t.Errorf("command turns changed history: %d entries", s.History().Len())
	}

	text := out.String()
	if !strings.Contains(text, "/help") || !strings.Contains(text, "/exit") {
		t.Error("help text not printed")
	}
	if !strings.Contains(text, "local") {
		t.Error("/mode did not report local")
	}
	if !strings.Contains(text, "Unknown command: /bogus") {
		t.Error("unrecognized command not reported")
	}
}

func TestRun_HistoryCommandShowsRecentTurns(t *testing.T) {
	s, out := newLocalSession("hi\necho two\necho three\n/history\n/exit\n")

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.History().Len() != 6 {
		t.Errorf("history length = %d, want 6", s.History().Len())
	}

	text := out.String()
	for _, want := range []string{"You: hi", "You: echo two", "Assistant: three"} {
		if !strings.Contains(text, want) {
			t.Errorf("history output missing %q:\n%s", want, text)
		}
	}
}

func TestRun_BlankLinesAreIgnored(t *testing.T) {
	s, _ := newLocalSession("\n   \nhi\n")

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.History().Len() != 2 {
		t.Errorf("history length = %d, want 2", s.History().Len())
	}
}

func TestRun_RemoteFailureDoesNotStopLoop(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("boom")}
	var out bytes.Buffer
	s := NewSession(&Config{Model: DefaultModel}, ModeRemote, fake, strings.NewReader("first\nsecond\n"), &out)

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fake.calls != 2 {
		t.Errorf("completer called %d times, want 2", fake.calls)
	}
	if s.History().Len() != 4 {
		t.Errorf("history length = %d, want 4", s.History().Len())
	}
	if !strings.Contains(out.String(), RemoteErrorReply) {
		t.Error("substituted reply not printed")
	}
}

func TestRun_ModeReportsOpenAIInRemote(t *testing.T) {
	fake := &fakeCompleter{reply: "ok"}
	var out bytes.Buffer
	s := NewSession(&Config{Model: DefaultModel}, ModeRemote, fake, strings.NewReader("/mode\n/exit\n"), &out)

	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "openai") {
		t.Error("/mode did not report openai")
	}
	if fake.calls != 0 {
		t.Error("command turn reached the completer")
	}
}
