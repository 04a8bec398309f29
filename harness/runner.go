// harness/runner.go
// Package: harness
package harness

import (
	"context"
	"errors"
	"time"

	"github.com/mwiater/gochatcli/chat"
	"github.com/mwiater/gochatcli/rules"
)

// RunRuleSuite is the single exported entrypoint. It replays every
// scenario through the rule matcher Trials times and returns detailed
// per-trial results plus per-scenario summaries.
func RunRuleSuite(ctx context.Context, cfg SuiteConfig) (SuiteResult, error) {
	if len(cfg.Scenarios) == 0 {
		return SuiteResult{}, errors.New("at least one PromptScenario is required")
	}
	if cfg.Trials <= 0 {
		cfg.Trials = 5
	}

	appCfg, err := chat.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return SuiteResult{}, err
	}
	table := appCfg.RuleTable()

	var all []TrialResult
	for _, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return SuiteResult{}, err
		}

		// Optional warm-up pass (not recorded).
		if cfg.Warmup {
			_ = table.Match(sc.Prompt)
		}

		for i := 0; i < cfg.Trials; i++ {
			all = append(all, matchAndMeasure(table, sc, i))
		}
	}

	return buildSuiteResult(cfg, all), nil
}

// matchAndMeasure replays one prompt through the table and records the
// reply and wall-clock latency.
func matchAndMeasure(table *rules.Table, sc PromptScenario, trial int) TrialResult {
	start := time.Now()
	reply := table.Match(sc.Prompt)
	elapsed := time.Since(start)

	return TrialResult{
		ScenarioID:     sc.ID,
		Trial:          trial,
		PromptLenChars: len(sc.Prompt),
		ReplyLenChars:  len(reply),
		Reply:          reply,
		Fallback:       reply == rules.Fallback,
		MatchMicros:    elapsed.Microseconds(),
	}
}
