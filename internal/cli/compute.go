package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qphys/wigner/internal/store"
	"github.com/qphys/wigner/internal/wigner"
)

// SymbolResult is the payload for one computed symbol.
type SymbolResult struct {
	Kind    string   `json:"kind"`              // "3j" or "6j"
	Inputs  []string `json:"inputs"`            // quantum numbers as entered
	Value   string   `json:"value"`             // fixed-precision decimal
	Invalid bool     `json:"invalid,omitempty"` // a selection rule failed; value is exactly 0
	Rule    string   `json:"rule,omitempty"`    // the violated rule code
}

// newFormatter builds the OutputFormatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// parseQuantumArgs converts positional arguments into quantum numbers.
// Malformed fractions and values outside the integer/half-integer domain are
// command errors; they never construct a request.
func parseQuantumArgs(args []string) ([]wigner.QNum, error) {
	qs := make([]wigner.QNum, len(args))
	for i, arg := range args {
		r, err := ParseQuantumNumber(arg)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid argument", err)
		}
		q, err := wigner.NewQNum(r)
		if err != nil {
			return nil, WrapExitError(ExitCommandError,
				fmt.Sprintf("argument %d must be an integer or half-integer", i+1), err)
		}
		qs[i] = q
	}
	return qs, nil
}

// computeSymbol evaluates a validated-domain request and renders the result.
// An invalid symbol prints exactly 0 with a success exit code; only the
// verbose log and the JSON payload name the violated rule.
func computeSymbol(opts *RootOptions, cmd *cobra.Command, req wigner.Request, inputs []string) error {
	formatter := newFormatter(opts, cmd)

	result := SymbolResult{Kind: req.Kind(), Inputs: inputs}

	value, err := wigner.Evaluate(req)
	if err != nil {
		var invalid *wigner.InvalidSymbolError
		if !errors.As(err, &invalid) {
			return WrapExitError(ExitFailure, "evaluation failed", err)
		}
		formatter.VerboseLog("invalid symbol, value is exactly 0: %s", invalid)
		result.Invalid = true
		result.Rule = string(invalid.Code)
		value = 0
	}

	result.Value = wigner.FormatValue(value, opts.Precision)

	if opts.DBPath != "" {
		if err := recordEvaluation(opts, cmd, result); err != nil {
			return err
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintln(formatter.Writer, result.Value)
	return nil
}

// recordEvaluation appends the result to the history database.
func recordEvaluation(opts *RootOptions, cmd *cobra.Command, result SymbolResult) error {
	s, err := store.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer s.Close()

	if _, err := s.RecordEvaluation(cmd.Context(), result.Kind, result.Inputs, result.Value); err != nil {
		return WrapExitError(ExitCommandError, "failed to record evaluation", err)
	}
	return nil
}
