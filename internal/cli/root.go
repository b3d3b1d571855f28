package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	Precision int    // fractional digits in rendered values
	DBPath    string // optional evaluation history database
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// maxPrecision bounds --precision to what a float64 can meaningfully show.
const maxPrecision = 15

// NewRootCommand creates the root command for the wigner CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wigner",
		Short: "Wigner 3-j and 6-j symbol calculator",
		Long: `Calculate Wigner 3-j and 6-j symbols: quantum angular momentum
coupling coefficients, evaluated exactly via the Racah closed forms.

Quantum numbers are integers or half-integers, entered as "2", "-1" or "3/2".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Precision < 1 || opts.Precision > maxPrecision {
				return fmt.Errorf("invalid precision %d: must be between 1 and %d", opts.Precision, maxPrecision)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVar(&opts.Precision, "precision", 8, "fractional digits in results")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "record evaluations to this SQLite history database")

	// Add subcommands
	cmd.AddCommand(NewThreeJCommand(opts))
	cmd.AddCommand(NewSixJCommand(opts))
	cmd.AddCommand(NewInteractiveCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
