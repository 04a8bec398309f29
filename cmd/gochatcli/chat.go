// cmd/gochatcli/chat.go
package gochatcli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gochatcli/cli"
)

// startChat is swappable in tests.
var startChat = cli.StartREPL

// cfgFile stores the config file path bound to the --config flag.
var cfgFile string

// chatCmd represents the 'chat' command.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `The 'chat' command starts an interactive chat session. Input is read
one line at a time from standard input; lines beginning with '/' are
commands (/help, /history, /mode, /exit), everything else is answered by
the rule table in local mode or the OpenAI API in remote mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startChat(viper.GetString("config"))
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.json", "config file (e.g., config.json)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
