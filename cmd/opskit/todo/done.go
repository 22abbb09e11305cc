package todo

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
)

func createDoneCmd() *cobra.Command {
	doneCmd := &cobra.Command{
		Use:   "done <index>",
		Short: "Complete the task at the given index",
		Long: `Complete the task at the given 1-based index, removing it from the list.

Use todo list to see the current indices.

Examples:
  opskit todo done 1
  opskit todo done 3`,
		Args: cobra.ExactArgs(1),
		RunE: createDoneCmdRunE,
	}

	return doneCmd
}

// createDoneCmdRunE creates the RunE function for the done command.
func createDoneCmdRunE(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return cli.UsageError(fmt.Errorf("invalid todo index %q", args[0]))
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	removed, err := tb.TodoDone(index)
	if err != nil {
		return cli.CommandError(err)
	}

	if !cli.Quiet {
		fmt.Printf("%s Completed %q\n", cli.SuccessStyle.Render("✓"), removed)
	}

	return nil
}
