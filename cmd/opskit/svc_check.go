package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/service"
)

func createSvcCheckCmd() *cobra.Command {
	svcCheckCmd := &cobra.Command{
		Use:   "svc-check <service>",
		Short: "Check whether a system service is active",
		Long: `Check whether a system service is active.

Uses systemctl when available and falls back to the service command on
hosts without systemd.

Examples:
  opskit svc-check nginx
  opskit svc-check sshd`,
		Args: cobra.ExactArgs(1),
		RunE: createSvcCheckCmdRunE,
	}

	return svcCheckCmd
}

// createSvcCheckCmdRunE creates the RunE function for the svc-check command.
func createSvcCheckCmdRunE(_ *cobra.Command, args []string) error {
	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	state, err := tb.ServiceCheck(args[0])
	if err != nil {
		return cli.CommandError(err)
	}

	fmt.Printf("%s is %s\n", args[0], renderState(state))
	return nil
}

// renderState colors a service state for terminal output.
func renderState(state service.State) string {
	if state == service.StateActive {
		return cli.SuccessStyle.Render(string(state))
	}
	return cli.WarningStyle.Render(string(state))
}
