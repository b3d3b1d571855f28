package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qphys/wigner/internal/cli"
	"github.com/qphys/wigner/internal/wigner"
)

// Case is one conformance case: a symbol request with either an expected
// value or an expected violated-rule code.
type Case struct {
	// Name uniquely identifies this case.
	Name string `yaml:"name"`

	// Kind selects the symbol type: "3j" or "6j".
	Kind string `yaml:"kind"`

	// Inputs are the six quantum numbers as entered on a command line,
	// in j1 j2 j3 m1 m2 m3 order for 3-j and j1..j6 order for 6-j.
	Inputs []string `yaml:"inputs"`

	// Value is the expected floating value, asserted within Tolerance.
	// Ignored when Rule is set.
	Value float64 `yaml:"value,omitempty"`

	// Rule, when set, marks the case invalid: evaluation must report this
	// rule code and the value must be exactly 0.
	Rule string `yaml:"rule,omitempty"`
}

// CaseFile is the top-level structure of a case YAML file.
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// Tolerance is the assertion tolerance for expected values: case files
// carry hand-written decimals, not bit-exact floats.
const Tolerance = 1e-8

// LoadCases reads and parses a case YAML file. Returns an error if the file
// doesn't exist, is malformed, contains unknown fields (typos), or holds an
// ill-formed case.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var file CaseFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, c := range file.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case %d: missing name", i)
		}
		if c.Kind != "3j" && c.Kind != "6j" {
			return nil, fmt.Errorf("case %q: kind must be 3j or 6j, got %q", c.Name, c.Kind)
		}
		if len(c.Inputs) != 6 {
			return nil, fmt.Errorf("case %q: want 6 inputs, got %d", c.Name, len(c.Inputs))
		}
	}
	return file.Cases, nil
}

// Request builds the evaluator request for a case.
func (c Case) Request() (wigner.Request, error) {
	qs := make([]wigner.QNum, len(c.Inputs))
	for i, input := range c.Inputs {
		r, err := cli.ParseQuantumNumber(input)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		q, err := wigner.NewQNum(r)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		qs[i] = q
	}

	if c.Kind == "3j" {
		return wigner.ThreeJ{
			J1: qs[0], J2: qs[1], J3: qs[2],
			M1: qs[3], M2: qs[4], M3: qs[5],
		}, nil
	}
	return wigner.SixJ{
		J1: qs[0], J2: qs[1], J3: qs[2],
		J4: qs[3], J5: qs[4], J6: qs[5],
	}, nil
}
