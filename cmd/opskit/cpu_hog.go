package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createCPUHogCmd() *cobra.Command {
	cpuHogCmd := &cobra.Command{
		Use:   "cpu-hog [threshold]",
		Short: "List processes whose CPU usage exceeds a threshold",
		Long: `List processes whose CPU usage exceeds a threshold, sorted by CPU.

The threshold defaults to 30% and the list is truncated to the top 50
processes.

Examples:
  opskit cpu-hog
  opskit cpu-hog 50
  opskit cpu-hog 12.5`,
		Args: cobra.MaximumNArgs(1),
		RunE: createCPUHogCmdRunE,
	}

	return cpuHogCmd
}

// createCPUHogCmdRunE creates the RunE function for the cpu-hog command.
func createCPUHogCmdRunE(_ *cobra.Command, args []string) error {
	params := toolbox.CPUHogsParams{}

	if len(args) > 0 {
		threshold, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return cli.UsageError(fmt.Errorf("invalid CPU threshold %q", args[0]))
		}
		params.Threshold = threshold
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	report, err := tb.CPUHogs(params)
	if err != nil {
		return cli.CommandError(err)
	}

	if len(report.Rows) == 0 {
		fmt.Println("No processes above the CPU threshold.")
		return nil
	}

	fmt.Println(report.Header)
	for _, row := range report.Rows {
		fmt.Println(row)
	}

	return nil
}
