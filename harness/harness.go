package harness

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/k0kubun/pp"
)

// DefaultScenarios covers each built-in rule kind plus a guaranteed miss.
func DefaultScenarios() []PromptScenario {
	return []PromptScenario{
		{ID: "greeting", Description: "exact-match greeting", Prompt: "hello"},
		{ID: "identity", Description: "prefix-match identity question", Prompt: "who are you anyway"},
		{ID: "time", Description: "substring-match time question", Prompt: "what time is it"},
		{ID: "echo", Description: "dynamic echo rule", Prompt: "echo benchmark payload"},
		{ID: "fallback", Description: "guaranteed rule miss", Prompt: "zxqv unmatched input 12345"},
	}
}

// Run replays the default scenarios through the rule table from the given
// config and prints a concise per-scenario summary followed by the full
// suite result as JSON.
func Run(configPath string) error {
	cfg := SuiteConfig{
		ConfigPath: configPath,
		Scenarios:  DefaultScenarios(),
		Trials:     5,
		Warmup:     true,
	}

	pp.Println(cfg)

	res, err := RunRuleSuite(context.Background(), cfg)
	if err != nil {
		return err
	}

	for _, r := range res.Reports {
		fmt.Printf("SCENARIO: %s\n", r.ScenarioID)
		fmt.Printf("  MATCH p50/p95: %.1f / %.1f us\n", r.MatchP50, r.MatchP95)
		fmt.Printf("  MATCH mean±std: %.2f ± %.2f us\n", r.MatchMean, r.MatchStd)
		fmt.Printf("  Fallback rate: %.0f%%\n\n", r.FallbackRate*100)
	}

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
