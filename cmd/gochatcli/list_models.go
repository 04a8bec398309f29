// cmd/gochatcli/list_models.go
package gochatcli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gochatcli/cli"
)

// listModelsCmd implements 'list models', which enumerates the completion
// models the configured API key can access. In local mode it prints a
// notice instead.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the completion models available to the API key",
	Long:  `The 'models' subcommand queries the OpenAI API for the models the configured key can access and marks the one selected in the config. Without an API key the assistant runs locally and has no remote models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListModels(viper.GetString("config"), cmd.OutOrStdout())
	},
}

func init() {
	listCmd.AddCommand(listModelsCmd)
}
