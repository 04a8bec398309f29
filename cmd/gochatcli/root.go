// cmd/gochatcli/root.go
package gochatcli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base Cobra command for the gochatcli application.
// Running it with no arguments starts an interactive chat session, so
// the assistant works as a single entry point with nothing required.
var rootCmd = &cobra.Command{
	Use:   "gochatcli",
	Short: "A small command-line chat assistant",
	Long: `gochatcli is a command-line chat assistant. It answers from a local
rule table by default and switches to the OpenAI API when OPENAI_API_KEY
is set in the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startChat(viper.GetString("config"))
	},
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
}
