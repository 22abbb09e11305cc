package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/dependencies"
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the opskit configuration",
		Long: `Write the default configuration file and an empty todo store if none exist yet.

The configuration records the todo store path and the run log path. Existing
files are never overwritten.

Examples:
  opskit init
  opskit init -c /etc/opskit/config.yaml`,
		Args: cobra.NoArgs,
		RunE: createInitCmdRunE,
	}

	return initCmd
}

// createInitCmdRunE creates the RunE function for the init command.
func createInitCmdRunE(_ *cobra.Command, _ []string) error {
	manager := cli.NewConfigManager()

	cfg, created, err := manager.EnsureConfigFile()
	if err != nil {
		return cli.CommandError(err)
	}

	// Touch the todo store so the first todo command finds its file
	deps := dependencies.New()
	todoPath, err := deps.FS.ExpandPath(cfg.TodoFile)
	if err != nil {
		return cli.CommandError(fmt.Errorf("failed to expand todo store path: %w", err))
	}
	if err := deps.FS.CreateFileIfNotExists(todoPath, nil, 0644); err != nil {
		return cli.CommandError(fmt.Errorf("failed to create todo store: %w", err))
	}

	if !cli.Quiet {
		if created {
			fmt.Printf("%s Configuration written to %s\n", cli.SuccessStyle.Render("✓"), manager.GetConfigPath())
		} else {
			fmt.Printf("Configuration already exists at %s\n", manager.GetConfigPath())
		}
	}

	return nil
}
