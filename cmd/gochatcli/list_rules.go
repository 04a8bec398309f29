// cmd/gochatcli/list_rules.go
package gochatcli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gochatcli/chat"
)

// rulesCmd implements 'list rules', which prints the active rule table in
// match order: built-in rules first, then any rules from the config file.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active rule table in match order",
	Long:  `The 'rules' subcommand lists every rule the local responder checks, in the order they are matched. Rules from the config file appear after the built-in rules.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := chat.LoadConfig(viper.GetString("config"))
		if err != nil {
			return err
		}
		listRules(cmd, cfg)
		return nil
	},
}

func init() {
	listCmd.AddCommand(rulesCmd)
}

// listRules prints each rule's trigger and response in a padded,
// two-column layout. Dynamic rules show a placeholder response.
func listRules(cmd *cobra.Command, cfg *chat.Config) {
	table := cfg.RuleTable()

	maxTriggerLength := 0
	for _, r := range table.Rules() {
		if len(r.Trigger) > maxTriggerLength {
			maxTriggerLength = len(r.Trigger)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Rules (first match wins):")
	for _, r := range table.Rules() {
		response := r.Response
		if r.Dynamic != nil {
			response = "(computed from input)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s%s%s\n", r.Trigger, strings.Repeat(" ", maxTriggerLength-len(r.Trigger)+2), response)
	}
}
