package rules

import (
	"strings"
	"testing"
)

func TestMatch_TableOrderAndKinds(t *testing.T) {
	table := NewTable([]Rule{
		{Trigger: "hello", Kind: MatchExact, Response: "Hi there!"},
		{Trigger: "sun", Kind: MatchContains, Response: "first in table order"},
		{Trigger: "sunshine", Kind: MatchContains, Response: "more specific but later"},
		{Trigger: "weather", Kind: MatchContains, Response: "Looks sunny to me."},
		{Trigger: "open ", Kind: MatchPrefix, Response: "Opening."},
	})

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "hello", "Hi there!"},
		{"case insensitive", "HeLLo", "Hi there!"},
		{"surrounding whitespace", "  hello  ", "Hi there!"},
		{"contains match", "what is the weather like", "Looks sunny to me."},
		{"prefix match", "open the door", "Opening."},
		{"table order beats specificity", "sunshine please", "first in table order"},
		{"no match falls back", "asdkjasd", Fallback},
		{"empty input falls back", "", Fallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := table.Match(tc.input); got != tc.want {
				t.Errorf("Match(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestMatch_DynamicRule(t *testing.T) {
	table := Builtin()

	if got := table.Match("echo repeat after me"); got != "repeat after me" {
		t.Errorf("echo rule returned %q", got)
	}
	if got := table.Match("what time is it"); !strings.HasPrefix(got, "Current time: ") {
		t.Errorf("time rule returned %q", got)
	}
}

func TestMatch_IsPure(t *testing.T) {
	table := NewTable([]Rule{{Trigger: "ping", Kind: MatchExact, Response: "pong"}})

	for i := 0; i < 3; i++ {
		if got := table.Match("ping"); got != "pong" {
			t.Fatalf("iteration %d: got %q", i, got)
		}
	}
	if table.Len() != 1 {
		t.Fatalf("table mutated: %d rules", table.Len())
	}
}

func TestBuiltin_GreetingAndFallback(t *testing.T) {
	table := Builtin()

	greeting := table.Match("hi")
	if greeting == Fallback {
		t.Fatal("expected a greeting response for 'hi'")
	}
	for _, in := range []string{"hello", "HEY"} {
		if got := table.Match(in); got != greeting {
			t.Errorf("Match(%q) = %q, want greeting", in, got)
		}
	}
	if got := table.Match("completely unknown input"); got != Fallback {
		t.Errorf("fallback not returned: %q", got)
	}
}

func TestAppend_PreservesOrderAndReceiver(t *testing.T) {
	base := NewTable([]Rule{{Trigger: "a", Kind: MatchExact, Response: "base"}})
	extended := base.Append([]Rule{{Trigger: "a", Kind: MatchExact, Response: "shadowed"}, {Trigger: "b", Kind: MatchExact, Response: "extra"}})

	if base.Len() != 1 {
		t.Fatalf("Append mutated receiver: %d rules", base.Len())
	}
	// Earlier rules shadow later ones with the same trigger.
	if got := extended.Match("a"); got != "base" {
		t.Errorf("Match(a) = %q, want base rule response", got)
	}
	if got := extended.Match("b"); got != "extra" {
		t.Errorf("Match(b) = %q, want extra", got)
	}
}
