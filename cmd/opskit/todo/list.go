// Package todo provides todo list management commands for the opskit CLI.
package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all stored tasks",
		Long: `List all stored tasks in the order they were added.

Examples:
  opskit todo list
  opskit todo`,
		Args: cobra.NoArgs,
		RunE: createListCmdRunE,
	}

	return listCmd
}

// createListCmdRunE creates the RunE function for the list command.
func createListCmdRunE(_ *cobra.Command, _ []string) error {
	return cli.CommandError(runList())
}

// runList prints the stored tasks. It backs both `todo` and `todo list`.
func runList() error {
	tb, err := cli.NewToolbox()
	if err != nil {
		return err
	}

	tasks, err := tb.TodoList()
	if err != nil {
		return err
	}

	printTasks(tasks)
	return nil
}

// printTasks prints the numbered task list to stdout.
func printTasks(tasks []string) {
	if len(tasks) == 0 {
		fmt.Println("No todos.")
		return
	}

	for i, task := range tasks {
		fmt.Printf("%d. %s\n", i+1, task)
	}
}
