package cli

import (
	"github.com/spf13/cobra"

	"github.com/qphys/wigner/internal/wigner"
)

// NewSixJCommand creates the 6j command.
func NewSixJCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "6j <j1> <j2> <j3> <j4> <j5> <j6>",
		Aliases: []string{"sixj"},
		Short:   "Calculate a Wigner 6-j symbol",
		Long: `Calculate the Wigner 6-j symbol

  { j1 j2 j3 }
  { j4 j5 j6 }

Quantum numbers are integers or half-integers ("1", "-1", "3/2").
A symbol with a triad violating the triangle condition is exactly 0 and
prints 0.

Example:
  wigner 6j 1 1 1 1 1 1`,
		Args:          cobra.ExactArgs(6),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSixJ(rootOpts, args, cmd)
		},
	}

	// Negative quantum numbers must parse as positionals, so stop flag
	// parsing at the first positional argument.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runSixJ(opts *RootOptions, args []string, cmd *cobra.Command) error {
	qs, err := parseQuantumArgs(args)
	if err != nil {
		return err
	}

	req := wigner.SixJ{
		J1: qs[0], J2: qs[1], J3: qs[2],
		J4: qs[3], J5: qs[4], J6: qs[5],
	}
	return computeSymbol(opts, cmd, req, args)
}
