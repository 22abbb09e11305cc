package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createGitDeployCmd() *cobra.Command {
	var restartService string

	gitDeployCmd := &cobra.Command{
		Use:   "git-deploy <repo-path> [branch] [--restart <service>]",
		Short: "Update a repository to the latest commit of a branch",
		Long: `Update a git repository to the latest commit of a branch.

The branch defaults to main. A dirty working tree stops the deploy before
anything is fetched. After the pull, a repo-local deploy.sh is run when it
is present and executable. With --restart the named service is restarted
and verified once the deploy succeeded.

Examples:
  opskit git-deploy /srv/app
  opskit git-deploy /srv/app release
  opskit git-deploy /srv/app main --restart app.service`,
		Args: cobra.RangeArgs(1, 2),
		RunE: createGitDeployCmdRunE,
	}

	// Add restart flag
	gitDeployCmd.Flags().StringVarP(&restartService, "restart", "r", "",
		"Restart the specified service after a successful deploy")

	return gitDeployCmd
}

// createGitDeployCmdRunE creates the RunE function for the git-deploy command.
func createGitDeployCmdRunE(cmd *cobra.Command, args []string) error {
	restartService, err := cmd.Flags().GetString("restart")
	if err != nil {
		return fmt.Errorf("failed to get restart flag: %w", err)
	}

	params := toolbox.DeployParams{
		RepoPath: args[0],
	}
	if len(args) > 1 {
		params.Branch = args[1]
	}
	if restartService != "" {
		params.Service = restartService
		params.Restart = true
	}

	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	result, err := tb.GitDeploy(params)
	if err != nil {
		return cli.CommandError(err)
	}

	if !cli.Quiet {
		if result.Head != "" {
			fmt.Printf("%s Deployed %s (%s)\n", cli.SuccessStyle.Render("✓"), result.Branch, result.Head)
		} else {
			fmt.Printf("%s Deployed %s\n", cli.SuccessStyle.Render("✓"), result.Branch)
		}
		if result.HookRan {
			fmt.Println("  deploy hook completed")
		}
		if result.Restarted {
			fmt.Printf("  service %s restarted\n", restartService)
		}
	}

	if result.RestartWarning != "" {
		fmt.Fprintln(os.Stderr, cli.WarningStyle.Render("Warning:")+" "+result.RestartWarning)
	}

	return nil
}
