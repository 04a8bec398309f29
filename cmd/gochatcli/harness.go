// cmd/gochatcli/harness.go
package gochatcli

import (
	"github.com/spf13/cobra"
)

// harnessCmd groups the rule-matcher benchmark subcommands.
var harnessCmd = &cobra.Command{
	Use:   "harness",
	Short: "Group commands for exercising the rule matcher",
	Long:  `The 'harness' command groups subcommands that replay scripted prompts through the rule matcher and report on the results. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(harnessCmd)
}
