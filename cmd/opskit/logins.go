package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createLoginsCmd() *cobra.Command {
	loginsCmd := &cobra.Command{
		Use:   "logins [count] [output-file]",
		Short: "Show the most recent login records",
		Long: `Show the most recent login records as reported by last.

The count defaults to 50. When an output file is given the records are
written there instead of stdout.

Examples:
  opskit logins
  opskit logins 10
  opskit logins 100 /tmp/logins.txt`,
		Args: cobra.MaximumNArgs(2),
		RunE: createLoginsCmdRunE,
	}

	return loginsCmd
}

// createLoginsCmdRunE creates the RunE function for the logins command.
func createLoginsCmdRunE(_ *cobra.Command, args []string) error {
	params := toolbox.LoginsParams{}

	if len(args) > 0 {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return cli.UsageError(fmt.Errorf("invalid login count %q", args[0]))
		}
		params.Count = count
	}

	if len(args) > 1 {
		params.OutputPath = args[1]
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	records, err := tb.RecentLogins(params)
	if err != nil {
		return cli.CommandError(err)
	}

	if params.OutputPath != "" {
		if !cli.Quiet {
			fmt.Printf("%s Login report written to %s\n", cli.SuccessStyle.Render("✓"), params.OutputPath)
		}
		return nil
	}

	fmt.Print(records)
	return nil
}
