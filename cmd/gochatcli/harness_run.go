// cmd/gochatcli/harness_run.go
package gochatcli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gochatcli/harness"
)

// harnessRunCmd implements 'harness run', which replays the default
// scenarios through the active rule table and prints the suite result.
var harnessRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay the default prompt scenarios through the rule table",
	Long:  `The 'run' subcommand replays a scripted set of prompts through the active rule table (built-ins plus any config rules), several trials each, and reports per-scenario match latency and fallback rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return harness.Run(viper.GetString("config"))
	},
}

func init() {
	harnessCmd.AddCommand(harnessRunCmd)
}
