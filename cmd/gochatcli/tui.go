// cmd/gochatcli/tui.go
package gochatcli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gochatcli/cli"
)

// startGUI is swappable in tests.
var startGUI = cli.StartGUI

// tuiCmd represents the 'tui' command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start a chat session in the full-screen interface",
	Long:  `The 'tui' command starts the same chat session as 'chat' inside a full-screen Bubble Tea interface with a scrollable transcript.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startGUI(viper.GetString("config"))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
