package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createDuReportCmd() *cobra.Command {
	duReportCmd := &cobra.Command{
		Use:   "du-report [dir] [top]",
		Short: "Report the largest entries under a directory",
		Long: `Report the largest immediate entries under a directory, sorted by size.

The directory defaults to the current one and the report is truncated to
the top 10 entries.

Examples:
  opskit du-report
  opskit du-report /var 5
  opskit du-report ~/projects 20`,
		Args: cobra.MaximumNArgs(2),
		RunE: createDuReportCmdRunE,
	}

	return duReportCmd
}

// createDuReportCmdRunE creates the RunE function for the du-report command.
func createDuReportCmdRunE(_ *cobra.Command, args []string) error {
	params := toolbox.DiskUsageParams{}

	if len(args) > 0 {
		params.Dir = args[0]
	}

	if len(args) > 1 {
		top, err := strconv.Atoi(args[1])
		if err != nil {
			return cli.UsageError(fmt.Errorf("invalid entry count %q", args[1]))
		}
		params.Top = top
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	usages, err := tb.DiskUsageReport(params)
	if err != nil {
		return cli.CommandError(err)
	}

	if len(usages) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	if !cli.Quiet {
		dir := params.Dir
		if dir == "" {
			dir = "."
		}
		fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Largest entries under %s:", dir)))
	}

	for _, usage := range usages {
		fmt.Printf("%10s  %s\n", humanize.IBytes(uint64(usage.SizeKB)*1024), usage.Path)
	}

	return nil
}
