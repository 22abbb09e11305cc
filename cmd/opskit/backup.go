package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createBackupCmd() *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup <source> <destination.tar.gz>",
		Short: "Archive a directory or file into a compressed tarball",
		Long: `Archive a directory or file into a gzip-compressed tarball.

The source must exist before anything is written. Parent directories of the
destination are created as needed, and a failed run never leaves a partial
archive behind.

Examples:
  opskit backup /etc/nginx /backups/nginx.tar.gz
  opskit backup ~/projects/api ~/backups/api-$(date +%F).tar.gz`,
		Args: cobra.ExactArgs(2),
		RunE: createBackupCmdRunE,
	}

	return backupCmd
}

// createBackupCmdRunE creates the RunE function for the backup command.
func createBackupCmdRunE(_ *cobra.Command, args []string) error {
	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	result, err := tb.Backup(toolbox.BackupParams{
		Source:      args[0],
		Destination: args[1],
	})
	if err != nil {
		return cli.CommandError(err)
	}

	if !cli.Quiet {
		fmt.Printf("%s Archive created: %s (%s)\n",
			cli.SuccessStyle.Render("✓"), result.ArchivePath, humanize.IBytes(uint64(result.SizeBytes)))
	}

	return nil
}
