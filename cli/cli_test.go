package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/gochatcli/chat"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestNewSession_ModeFollowsCredential(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")

	t.Setenv("OPENAI_API_KEY", "")
	s, err := NewSession(missing, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Mode() != chat.ModeLocal {
		t.Errorf("mode = %v, want local without a credential", s.Mode())
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	s, err = NewSession(missing, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Mode() != chat.ModeRemote {
		t.Errorf("mode = %v, want remote with a credential", s.Mode())
	}
}

func TestNewSession_BadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := writeFile(path, `{ "model": `); err != nil {
		t.Fatalf("prep: %v", err)
	}
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewSession(path, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unparseable config")
	}
}

func TestListModels_LocalModePrintsNotice(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	var out bytes.Buffer
	if err := ListModels(filepath.Join(t.TempDir(), "absent.json"), &out); err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if !strings.Contains(out.String(), "Local mode") {
		t.Errorf("expected local-mode notice, got: %s", out.String())
	}
}

func newTestGUI(t *testing.T) *guiModel {
	t.Helper()
	session := chat.NewSession(&chat.Config{Model: chat.DefaultModel}, chat.ModeLocal, nil, strings.NewReader(""), &bytes.Buffer{})
	return initialModel(session)
}

func TestHandleCommand_ExitQuits(t *testing.T) {
	m := newTestGUI(t)

	quit, _ := m.handleCommand("/exit")
	if !quit {
		t.Fatal("/exit should quit")
	}
	quit, _ = m.handleCommand("hello there")
	if quit {
		t.Fatal("ordinary input should not quit")
	}
}

func TestHandleCommand_NoticesForRecognizedCommands(t *testing.T) {
	m := newTestGUI(t)

	cases := []struct {
		input string
		want  string
	}{
		{"/help", "/exit"},
		{"/mode", "local"},
		{"/history", "History"},
		{"/bogus", "Unknown command"},
	}
	for _, tc := range cases {
		quit, cmd := m.handleCommand(tc.input)
		if quit {
			t.Fatalf("%s should not quit", tc.input)
		}
		if cmd == nil {
			t.Fatalf("%s produced no command", tc.input)
		}
		msg, ok := cmd().(noticeMsg)
		if !ok {
			t.Fatalf("%s did not produce a notice", tc.input)
		}
		if !strings.Contains(string(msg), tc.want) {
			t.Errorf("%s notice = %q, want substring %q", tc.input, msg, tc.want)
		}
	}
}

func TestUpdate_ReplyAppendsToTranscript(t *testing.T) {
	m := newTestGUI(t)
	m.isLoading = true

	updated, _ := m.Update(replyMsg("Hello back."))
	gm := updated.(*guiModel)

	if gm.isLoading {
		t.Error("loading flag not cleared")
	}
	if len(gm.transcript) != 1 || gm.transcript[0].Speaker != chat.SpeakerAssistant {
		t.Fatalf("unexpected transcript: %+v", gm.transcript)
	}
	if gm.transcript[0].Text != "Hello back." {
		t.Errorf("unexpected reply text: %q", gm.transcript[0].Text)
	}
}

func TestUpdate_WindowSizeSetsViewport(t *testing.T) {
	m := newTestGUI(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	gm := updated.(*guiModel)

	if gm.width != 80 || gm.height != 24 {
		t.Errorf("size not recorded: %dx%d", gm.width, gm.height)
	}
	if gm.viewport.Width != 80 {
		t.Errorf("viewport width = %d", gm.viewport.Width)
	}
	if gm.View() == "Initializing..." {
		t.Error("view should render after a size message")
	}
}
