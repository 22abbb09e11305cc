package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
)

// CreateTodoCmd creates the todo command with all its subcommands.
func CreateTodoCmd() *cobra.Command {
	todoCmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo list management commands",
		Long: `Commands for managing the opskit todo list.

Running todo without a subcommand lists the stored tasks.`,
		Args: cobra.ArbitraryArgs,
		RunE: createTodoCmdRunE,
	}

	// Add todo subcommands
	addCmd := createAddCmd()
	todoCmd.AddCommand(addCmd)

	listCmd := createListCmd()
	todoCmd.AddCommand(listCmd)

	doneCmd := createDoneCmd()
	todoCmd.AddCommand(doneCmd)

	clearCmd := createClearCmd()
	todoCmd.AddCommand(clearCmd)

	return todoCmd
}

// createTodoCmdRunE creates the RunE function for the bare todo command.
func createTodoCmdRunE(_ *cobra.Command, args []string) error {
	// An unrecognized subcommand still lists the tasks, but the mistake is
	// signaled through the exit code.
	if err := runList(); err != nil {
		return cli.CommandError(err)
	}

	if len(args) > 0 {
		return cli.UsageError(fmt.Errorf("unknown todo command %q", args[0]))
	}

	return nil
}
