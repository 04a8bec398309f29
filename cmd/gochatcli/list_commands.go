// cmd/gochatcli/list_commands.go
package gochatcli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/gochatcli/chat"
)

// commandsCmd implements 'list commands', which prints the slash-commands
// the chat session understands in a padded, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the in-chat slash-commands",
	Long:  `The 'commands' subcommand lists the slash-commands available inside a chat session, with the command in the first column and its description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listSlashCommands(cmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

// listSlashCommands prints each slash-command and its description in a
// padded, two-column layout.
func listSlashCommands(cmd *cobra.Command) {
	commands := chat.Commands()

	maxNameLength := 0
	for _, c := range commands {
		if len(c.Name) > maxNameLength {
			maxNameLength = len(c.Name)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Slash-commands:")
	for _, c := range commands {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s%s%s\n", c.Name, strings.Repeat(" ", maxNameLength-len(c.Name)+2), c.Description)
	}
}
