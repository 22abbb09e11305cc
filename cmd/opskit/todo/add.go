// Package todo provides todo list management commands for the opskit CLI.
package todo

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
)

func createAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task to the todo list",
		Long: `Add a task to the todo list.

All arguments are joined into a single task, so quoting is optional.

Examples:
  opskit todo add Renew the TLS certificates
  opskit todo add "Rotate the database credentials"`,
		Args: cobra.MinimumNArgs(1),
		RunE: createAddCmdRunE,
	}

	return addCmd
}

// createAddCmdRunE creates the RunE function for the add command.
func createAddCmdRunE(_ *cobra.Command, args []string) error {
	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	task := strings.Join(args, " ")
	if err := tb.TodoAdd(task); err != nil {
		return cli.CommandError(err)
	}

	if !cli.Quiet {
		fmt.Printf("%s Added %q\n", cli.SuccessStyle.Render("✓"), strings.TrimSpace(task))
	}

	return nil
}
