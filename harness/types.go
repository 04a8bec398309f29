// harness/types.go
// Package: harness
package harness

import "time"

// PromptScenario is one canonical test prompt with a human label.
type PromptScenario struct {
	ID          string `json:"id"`          // e.g. "greeting", "echo", "fallback"
	Description string `json:"description"` // human-friendly
	Prompt      string `json:"prompt"`      // full prompt text
}

// SuiteConfig configures the entire run.
type SuiteConfig struct {
	// Path to the assistant config file; its rules are appended to the
	// built-in table exactly as in a live session.
	ConfigPath string `json:"config_path"`

	// Scenarios to replay through the rule matcher.
	Scenarios []PromptScenario `json:"scenarios"`

	// Number of trials to run per scenario (warm runs).
	Trials int `json:"trials"`

	// Whether to run an initial warm-up pass per scenario (not recorded).
	Warmup bool `json:"warmup"`
}

// TrialResult captures metrics for a single replayed prompt.
type TrialResult struct {
	ScenarioID     string `json:"scenario_id"`
	Trial          int    `json:"trial"`
	PromptLenChars int    `json:"prompt_len_chars"`
	ReplyLenChars  int    `json:"reply_len_chars"`

	// Reply is the rule matcher's answer for this trial.
	Reply string `json:"reply"`

	// Fallback is true when no rule matched.
	Fallback bool `json:"fallback"`

	// MatchMicros is the wall-clock time for the match (monotonic).
	MatchMicros int64 `json:"match_us"`
}

// ScenarioSummary aggregates per-scenario stats for reporting.
type ScenarioSummary struct {
	ScenarioID string `json:"scenario_id"`

	// p50/p95 match latency across all trials, in microseconds
	MatchP50 float64 `json:"match_p50_us"`
	MatchP95 float64 `json:"match_p95_us"`

	// Mean +/- std of match latency
	MatchMean float64 `json:"match_mean_us"`
	MatchStd  float64 `json:"match_std_us"`

	// Fraction of trials that fell through to the fallback reply
	FallbackRate float64 `json:"fallback_rate"`
}

// SuiteResult is the top-level artifact returned by RunRuleSuite.
type SuiteResult struct {
	Config      SuiteConfig       `json:"config"`
	Trials      []TrialResult     `json:"trials"`
	Reports     []ScenarioSummary `json:"reports"`
	GeneratedAt time.Time         `json:"generated_at"`
}
