package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createLogRotateCmd() *cobra.Command {
	logRotateCmd := &cobra.Command{
		Use:   "log-rotate [dir] [max-age-days]",
		Short: "Compress stale log files under a directory",
		Long: `Compress every *.log file under a directory that is older than the given
age. Already compressed files are left untouched.

The directory defaults to /var/log and the age to 7 days. A file that fails
to compress is reported and skipped; it never aborts the rest of the batch.

Examples:
  opskit log-rotate
  opskit log-rotate /var/log 30
  opskit log-rotate ~/app/logs 1`,
		Args: cobra.MaximumNArgs(2),
		RunE: createLogRotateCmdRunE,
	}

	return logRotateCmd
}

// createLogRotateCmdRunE creates the RunE function for the log-rotate command.
func createLogRotateCmdRunE(_ *cobra.Command, args []string) error {
	params := toolbox.RotateParams{}

	if len(args) > 0 {
		params.Dir = args[0]
	}

	if len(args) > 1 {
		days, err := strconv.Atoi(args[1])
		if err != nil {
			return cli.UsageError(fmt.Errorf("invalid age in days %q", args[1]))
		}
		params.MaxAgeDays = days
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	result, err := tb.RotateLogs(params)
	if err != nil {
		return cli.CommandError(err)
	}

	if !cli.Quiet {
		for _, path := range result.Compressed {
			fmt.Printf("  compressed %s\n", path)
		}
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", cli.WarningStyle.Render("Warning:"), failure.Path, failure.Reason)
	}

	fmt.Printf("Compressed %d file(s), skipped %d, failed %d.\n",
		len(result.Compressed), result.Skipped, len(result.Failures))

	return nil
}
