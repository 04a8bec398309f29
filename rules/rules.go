// Package rules implements the local rule-based responder. A Table is an
// ordered list of trigger/response pairs that is fixed after construction;
// matching is a pure function of the input text and the table.
package rules

import (
	"strings"
	"time"
)

// Fallback is the reply returned when no rule matches the input.
const Fallback = "I don't know that yet. Try /help or run with OPENAI_API_KEY for smarter answers."

// MatchKind selects how a rule trigger is compared against the input.
type MatchKind int

const (
	// MatchExact requires the normalized input to equal the trigger.
	MatchExact MatchKind = iota
	// MatchPrefix requires the normalized input to start with the trigger.
	MatchPrefix
	// MatchContains requires the normalized input to contain the trigger.
	MatchContains
)

// Rule maps a trigger phrase to a canned response. Triggers are compared
// case-insensitively. If Dynamic is non-nil it is called with the raw input
// to produce the response; otherwise Response is returned as-is.
type Rule struct {
	// Trigger is the keyword or phrase that activates the rule.
	Trigger string `json:"trigger"`
	// Kind selects exact, prefix, or substring comparison.
	Kind MatchKind `json:"-"`
	// Response is the canned reply for static rules.
	Response string `json:"response"`
	// Dynamic computes the reply from the raw input. Not configurable
	// from JSON; only built-in rules use it.
	Dynamic func(input string) string `json:"-"`
}

// Table is an ordered rule set. First match wins; ties break on table
// order, not trigger specificity.
type Table struct {
	rules []Rule
}

// NewTable builds a table from the given rules, preserving order.
func NewTable(rs []Rule) *Table {
	t := &Table{rules: make([]Rule, len(rs))}
	copy(t.rules, rs)
	return t
}

// Builtin returns the default rule table: greetings, identity, current
// time, and an echo prefix.
func Builtin() *Table {
	return NewTable([]Rule{
		{Trigger: "hi", Kind: MatchExact, Response: "Hello! I am your local assistant. Ask me to do something or type /help for commands."},
		{Trigger: "hello", Kind: MatchExact, Response: "Hello! I am your local assistant. Ask me to do something or type /help for commands."},
		{Trigger: "hey", Kind: MatchExact, Response: "Hello! I am your local assistant. Ask me to do something or type /help for commands."},
		{Trigger: "what is your name", Kind: MatchPrefix, Response: "I'm a small CLI assistant. You can run me with an OpenAI key to use the OpenAI API."},
		{Trigger: "who are you", Kind: MatchPrefix, Response: "I'm a small CLI assistant. You can run me with an OpenAI key to use the OpenAI API."},
		{Trigger: "time", Kind: MatchContains, Dynamic: func(string) string {
			return "Current time: " + time.Now().Format(time.RFC3339)
		}},
		{Trigger: "echo ", Kind: MatchPrefix, Dynamic: func(input string) string {
			return strings.TrimSpace(input)[5:]
		}},
	})
}

// Append returns a new table with the extra rules added after the
// existing ones. The receiver is not modified.
func (t *Table) Append(rs []Rule) *Table {
	merged := make([]Rule, 0, len(t.rules)+len(rs))
	merged = append(merged, t.rules...)
	merged = append(merged, rs...)
	return NewTable(merged)
}

// Rules returns a copy of the table's rules in match order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Match returns the response for the first rule whose trigger matches the
// input, or Fallback when no rule matches. Matching normalizes the input
// by trimming whitespace and lowercasing; it never fails and has no side
// effects.
func (t *Table) Match(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, r := range t.rules {
		if !matches(normalized, r) {
			continue
		}
		if r.Dynamic != nil {
			return r.Dynamic(input)
		}
		return r.Response
	}
	return Fallback
}

// matches reports whether the normalized input activates the rule.
func matches(normalized string, r Rule) bool {
	trigger := strings.ToLower(r.Trigger)
	switch r.Kind {
	case MatchExact:
		return normalized == trigger
	case MatchPrefix:
		return strings.HasPrefix(normalized, trigger)
	case MatchContains:
		return strings.Contains(normalized, trigger)
	default:
		return false
	}
}
