// Package main provides the command-line interface for the opskit application.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/cmd/opskit/todo"
	"opskit/pkg/exitcode"
)

// version is the semantic version (set via -ldflags).
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "opskit",
		Short: "Opskit - Small Systems Administration Toolbox",
		Long: `A single entry point for the recurring administration chores of a host: ` +
			`backups, log rotation, service checks, system reports and friends. ` +
			`Every run appends its outcome to a shared log file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except results and errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createCalcCmd(),
		createBackupCmd(),
		createLoginsCmd(),
		createDuReportCmd(),
		todo.CreateTodoCmd(),
		createSvcCheckCmd(),
		createSysReportCmd(),
		createLogRotateCmd(),
		createGitDeployCmd(),
		createCPUHogCmd(),
		createInitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("Error:")+" "+err.Error())

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		// Errors cobra raises itself never reach a command handler:
		// unknown commands, unknown flags, wrong argument counts.
		fmt.Fprintln(os.Stderr, "Run 'opskit --help' for usage.")
		os.Exit(exitcode.Usage)
	}
}
