// harness/results.go
// Package: harness
package harness

import "time"

// summarize builds per-scenario summaries from TrialResult rows.
func summarize(trials []TrialResult) []ScenarioSummary {
	byScenario := map[string][]TrialResult{}
	var order []string
	for _, t := range trials {
		if _, seen := byScenario[t.ScenarioID]; !seen {
			order = append(order, t.ScenarioID)
		}
		byScenario[t.ScenarioID] = append(byScenario[t.ScenarioID], t)
	}

	out := make([]ScenarioSummary, 0, len(byScenario))
	for _, id := range order {
		rows := byScenario[id]

		var matchVals []float64
		fallbacks := 0
		for _, r := range rows {
			matchVals = append(matchVals, float64(r.MatchMicros))
			if r.Fallback {
				fallbacks++
			}
		}

		mean, std := meanStd(matchVals)
		out = append(out, ScenarioSummary{
			ScenarioID:   id,
			MatchP50:     simpleQuantile(matchVals, 0.50),
			MatchP95:     simpleQuantile(matchVals, 0.95),
			MatchMean:    mean,
			MatchStd:     std,
			FallbackRate: float64(fallbacks) / float64(len(rows)),
		})
	}
	return out
}

// buildSuiteResult packs everything with a timestamp.
func buildSuiteResult(cfg SuiteConfig, trials []TrialResult) SuiteResult {
	return SuiteResult{
		Config:      cfg,
		Trials:      trials,
		Reports:     summarize(trials),
		GeneratedAt: time.Now(),
	}
}
