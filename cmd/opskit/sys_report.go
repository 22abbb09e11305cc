package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createSysReportCmd() *cobra.Command {
	sysReportCmd := &cobra.Command{
		Use:   "sys-report [output-file]",
		Short: "Capture a snapshot of the host state",
		Long: `Capture a labeled snapshot of the host state: hostname, uptime, memory,
disk usage and the top processes by CPU.

Sections whose probe fails are reported as unavailable rather than failing
the snapshot. When an output file is given the report is written there
instead of stdout.

Examples:
  opskit sys-report
  opskit sys-report /tmp/report.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: createSysReportCmdRunE,
	}

	return sysReportCmd
}

// createSysReportCmdRunE creates the RunE function for the sys-report command.
func createSysReportCmdRunE(_ *cobra.Command, args []string) error {
	params := toolbox.SystemReportParams{}
	if len(args) > 0 {
		params.OutputPath = args[0]
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	report, err := tb.SystemReport(params)
	if err != nil {
		return cli.CommandError(err)
	}

	if params.OutputPath != "" {
		if !cli.Quiet {
			fmt.Printf("%s System report written to %s\n", cli.SuccessStyle.Render("✓"), params.OutputPath)
		}
		return nil
	}

	fmt.Print(report)
	return nil
}
