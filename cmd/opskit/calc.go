package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"opskit/cmd/opskit/internal/cli"
	"opskit/pkg/toolbox"
)

func createCalcCmd() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc <expression | operation n1 n2 [n3]>",
		Short: "Evaluate an arithmetic expression or a named operation",
		Long: `Evaluate an arithmetic expression or apply a named operation to its operands.

A single argument is treated as a free-form expression and handed to bc.
With two or more arguments the first is the operation (add, sub, mul, div
or mod) and the rest are its operands. Integer operations are computed
natively; div goes through bc and prints six decimal places.

Examples:
  opskit calc "(2 + 3) * 4"
  opskit calc add 5 3
  opskit calc div 10 4
  opskit calc mod 17 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: createCalcCmdRunE,
	}

	return calcCmd
}

// createCalcCmdRunE creates the RunE function for the calc command.
func createCalcCmdRunE(_ *cobra.Command, args []string) error {
	tb, err := cli.NewToolbox()
	if err != nil {
		return cli.CommandError(err)
	}

	params := toolbox.CalcParams{}
	if len(args) == 1 {
		params.Expression = args[0]
	} else {
		params.Op = args[0]
		params.Operands = args[1:]
	}

	result, err := tb.Calc(params)
	if err != nil {
		return cli.CommandError(err)
	}

	fmt.Println(result)
	return nil
}
