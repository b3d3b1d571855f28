package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qphys/wigner/internal/wigner"
)

// NewInteractiveCommand creates the interactive command: the classic
// prompt-driven calculator session. One symbol per run.
func NewInteractiveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"prompt"},
		Short:   "Run the interactive calculator",
		Long: `Run the prompt-driven calculator: choose 3-j or 6-j, enter the quantum
numbers one at a time (integers or fractions like 1/2), and read the result.
Bad input re-prompts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(rootOpts, cmd)
		},
	}

	return cmd
}

func runInteractive(opts *RootOptions, cmd *cobra.Command) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "WIGNER SYMBOLS CALCULATOR")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "Calculate quantum angular momentum coupling coefficients")
	fmt.Fprintln(out)

	selection, err := promptSelection(in, out)
	if err != nil {
		return err
	}

	if selection == "3" {
		return interactiveThreeJ(opts, cmd, in, out)
	}
	return interactiveSixJ(opts, cmd, in, out)
}

func interactiveThreeJ(opts *RootOptions, cmd *cobra.Command, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out, "WIGNER 3-j SYMBOL CALCULATION")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out, "Enter angular momentum (j) and magnetic (m) quantum numbers")
	fmt.Fprintln(out)

	qs, err := promptQuantumNumbers(in, out, []string{"j1", "j2", "j3", "m1", "m2", "m3"})
	if err != nil {
		return err
	}

	req := wigner.ThreeJ{
		J1: qs[0], J2: qs[1], J3: qs[2],
		M1: qs[3], M2: qs[4], M3: qs[5],
	}
	value := evaluateInteractive(opts, cmd, req)
	formatted := wigner.FormatValue(value, opts.Precision)

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintf(out, "Wigner 3-j symbol { %s %s %s }\n", qs[0], qs[1], qs[2])
	fmt.Fprintf(out, "                     { %s %s %s }\n", qs[3], qs[4], qs[5])
	fmt.Fprintf(out, "Value: %s\n", formatted)
	fmt.Fprintln(out, strings.Repeat("=", 40))

	return recordInteractive(opts, cmd, req.Kind(), qs, formatted)
}

func interactiveSixJ(opts *RootOptions, cmd *cobra.Command, in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out, "WIGNER 6-j SYMBOL CALCULATION")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out, "Enter angular momentum quantum numbers")
	fmt.Fprintln(out)

	qs, err := promptQuantumNumbers(in, out, []string{"j1", "j2", "j3", "j4", "j5", "j6"})
	if err != nil {
		return err
	}

	req := wigner.SixJ{
		J1: qs[0], J2: qs[1], J3: qs[2],
		J4: qs[3], J5: qs[4], J6: qs[5],
	}
	value := evaluateInteractive(opts, cmd, req)
	formatted := wigner.FormatValue(value, opts.Precision)

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 40))
	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintf(out, "Wigner 6-j symbol { %s %s %s }\n", qs[0], qs[1], qs[2])
	fmt.Fprintf(out, "                   { %s %s %s }\n", qs[3], qs[4], qs[5])
	fmt.Fprintf(out, "Value: %s\n", formatted)
	fmt.Fprintln(out, strings.Repeat("=", 40))

	return recordInteractive(opts, cmd, req.Kind(), qs, formatted)
}

// evaluateInteractive applies the physical convention directly: an invalid
// symbol is 0, reported like any other value.
func evaluateInteractive(opts *RootOptions, cmd *cobra.Command, req wigner.Request) float64 {
	value, err := wigner.Evaluate(req)
	if err != nil {
		if opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid symbol, value is exactly 0: %v\n", err)
		}
		return 0
	}
	return value
}

func recordInteractive(opts *RootOptions, cmd *cobra.Command, kind string, qs []wigner.QNum, value string) error {
	if opts.DBPath == "" {
		return nil
	}
	inputs := make([]string, len(qs))
	for i, q := range qs {
		inputs[i] = q.String()
	}
	return recordEvaluation(opts, cmd, SymbolResult{Kind: kind, Inputs: inputs, Value: value})
}

// promptSelection asks for the symbol type until the answer is 3 or 6.
func promptSelection(in *bufio.Scanner, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "Select symbol type (3-j or 6-j). Enter 3 or 6: ")
		line, err := readLine(in)
		if err != nil {
			return "", err
		}
		selection := strings.TrimSpace(line)
		if selection == "3" || selection == "6" {
			return selection, nil
		}
		fmt.Fprintln(out, "Invalid selection. Please enter '3' for 3-j symbol or '6' for 6-j symbol.")
	}
}

// promptQuantumNumbers prompts for each named quantum number, re-prompting
// until the input parses as an integer or half-integer.
func promptQuantumNumbers(in *bufio.Scanner, out io.Writer, names []string) ([]wigner.QNum, error) {
	qs := make([]wigner.QNum, len(names))
	for i, name := range names {
		for {
			fmt.Fprintf(out, "Enter %s: ", name)
			line, err := readLine(in)
			if err != nil {
				return nil, err
			}
			r, err := ParseQuantumNumber(line)
			if err != nil {
				fmt.Fprintln(out, "Invalid input. Please enter a valid fraction (e.g., 1/2) or integer.")
				continue
			}
			q, err := wigner.NewQNum(r)
			if err != nil {
				fmt.Fprintln(out, "Invalid input. Quantum numbers must be integers or half-integers.")
				continue
			}
			qs[i] = q
			break
		}
	}
	return qs, nil
}

// readLine reads one line of input, mapping end-of-input to an ExitError.
func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", WrapExitError(ExitCommandError, "failed to read input", err)
		}
		return "", NewExitError(ExitCommandError, "input closed before the calculation finished")
	}
	return in.Text(), nil
}
