package chat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwiater/gochatcli/rules"
)

const (
	// DefaultModel is the completion model used when none is configured.
	DefaultModel = "gpt-3.5-turbo"
	// DefaultHistoryTail is how many entries /history shows.
	DefaultHistoryTail = 10
)

// ConfigRule is a user-defined static rule from the config file. Config
// rules always use substring matching.
type ConfigRule struct {
	// Trigger is the keyword or phrase that activates the rule.
	Trigger string `json:"trigger"`
	// Response is the canned reply.
	Response string `json:"response"`
}

// Config contains application settings that drive the CLI behavior.
type Config struct {
	// Model is the completion model name used in remote mode.
	Model string `json:"model"`
	// Debug enables a dump of the resolved configuration at startup.
	Debug bool `json:"debug"`
	// Rules are extra static rules appended after the built-in table.
	Rules []ConfigRule `json:"rules"`
}

// LoadConfig reads and parses the configuration file from the given path.
// A missing file is not an error: the assistant must run with no
// arguments and no files present, so defaults apply. A file that exists
// but cannot be parsed is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Model: DefaultModel}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config JSON: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return cfg, nil
}

// RuleTable builds the active rule table: built-ins first, then any
// config rules, in file order. The result is fixed for the process
// lifetime.
func (c *Config) RuleTable() *rules.Table {
	table := rules.Builtin()
	if len(c.Rules) == 0 {
		return table
	}
	extra := make([]rules.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		extra = append(extra, rules.Rule{Trigger: r.Trigger, Kind: rules.MatchContains, Response: r.Response})
	}
	return table.Append(extra)
}
