package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
)

func createClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored tasks",
		Long: `Delete all stored tasks after an interactive confirmation.

Declining the confirmation leaves the list untouched and is not an error.

Examples:
  opskit todo clear`,
		Args: cobra.NoArgs,
		RunE: createClearCmdRunE,
	}

	return clearCmd
}

// createClearCmdRunE creates the RunE function for the clear command.
func createClearCmdRunE(_ *cobra.Command, _ []string) error {
	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	cleared, err := tb.TodoClear()
	if err != nil {
		return cli.CommandError(err)
	}

	if !cleared {
		if !cli.Quiet {
			fmt.Println("Clear cancelled.")
		}
		return nil
	}

	if !cli.Quiet {
		fmt.Printf("%s Todo list cleared\n", cli.SuccessStyle.Render("✓"))
	}

	return nil
}
