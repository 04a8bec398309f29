package chat

// Speaker identifies who produced a history entry.
type Speaker string

const (
	// SpeakerUser marks an entry typed by the user.
	SpeakerUser Speaker = "user"
	// SpeakerAssistant marks an entry produced by the assistant.
	SpeakerAssistant Speaker = "assistant"
)

// Label returns a display name for the speaker.
func (s Speaker) Label() string {
	if s == SpeakerAssistant {
		return "Assistant"
	}
	return "You"
}

// Entry is a single conversation turn half. Entries are immutable once
// appended.
type Entry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// History is the append-only, in-memory conversation log for the current
// process lifetime. It is owned by a single Session and never accessed
// concurrently.
type History struct {
	entries []Entry
}

// Append adds an entry to the end of the log.
func (h *History) Append(speaker Speaker, text string) {
	h.entries = append(h.entries, Entry{Speaker: speaker, Text: text})
}

// Len returns the number of entries recorded so far.
func (h *History) Len() int {
	return len(h.entries)
}

// Tail returns the last n entries in chronological order, or all entries
// when fewer than n exist. The returned slice is a copy.
func (h *History) Tail(n int) []Entry {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Entry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Entries returns a copy of the full log in chronological order.
func (h *History) Entries() []Entry {
	return h.Tail(len(h.entries))
}
