package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qphys/wigner/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded evaluations",
		Long: `List evaluations recorded in the history database, newest first.

Recording is opt-in: pass --db to the 3j, 6j or interactive commands to
record, and the same --db here to read back.

Example:
  wigner --db ~/.wigner.db history --limit 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of evaluations to list (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.DBPath == "" {
		_ = formatter.Error("NO_DATABASE", "history requires --db", nil)
		return NewExitError(ExitCommandError, "history requires --db")
	}

	s, err := store.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer s.Close()

	evals, err := s.ListEvaluations(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(evals)
	}

	if len(evals) == 0 {
		fmt.Fprintln(formatter.Writer, "no evaluations recorded")
		return nil
	}
	for _, e := range evals {
		fmt.Fprintf(formatter.Writer, "%-3s %-24s = %s\n", e.Kind, strings.Join(e.Inputs, " "), e.Value)
	}
	return nil
}
