package cli

import (
	"github.com/spf13/cobra"

	"github.com/qphys/wigner/internal/wigner"
)

// NewThreeJCommand creates the 3j command.
func NewThreeJCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "3j <j1> <j2> <j3> <m1> <m2> <m3>",
		Aliases: []string{"threej"},
		Short:   "Calculate a Wigner 3-j symbol",
		Long: `Calculate the Wigner 3-j symbol

  ( j1 j2 j3 )
  ( m1 m2 m3 )

Quantum numbers are integers or half-integers ("1", "-1", "3/2").
A symbol violating a triangle or selection rule is exactly 0 and prints 0.

Example:
  wigner 3j 1 1 1 1 -1 0`,
		Args:          cobra.ExactArgs(6),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThreeJ(rootOpts, args, cmd)
		},
	}

	// Negative quantum numbers ("-1") must parse as positionals, so stop
	// flag parsing at the first positional argument.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runThreeJ(opts *RootOptions, args []string, cmd *cobra.Command) error {
	qs, err := parseQuantumArgs(args)
	if err != nil {
		return err
	}

	req := wigner.ThreeJ{
		J1: qs[0], J2: qs[1], J3: qs[2],
		M1: qs[3], M2: qs[4], M3: qs[5],
	}
	return computeSymbol(opts, cmd, req, args)
}
