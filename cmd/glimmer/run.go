package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glimmer/driver"
	"github.com/katalvlaran/glimmer/lights"
	"github.com/katalvlaran/glimmer/trolls"
)

// runSpec is one fully described run. It doubles as the YAML schema
// for batch scenarios.
type runSpec struct {
	Kind      string `yaml:"kind"`
	Lights    int    `yaml:"lights"`
	Branch    int    `yaml:"branch,omitempty"`
	Endpoints []int  `yaml:"endpoints,omitempty"`
	Initial   string `yaml:"initial,omitempty"`
	Passes    int    `yaml:"passes,omitempty"`
}

func newRunCmd() *cobra.Command {
	spec := runSpec{}
	var noColor bool

	cmd := &cobra.Command{
		Use:   "run <kind>",
		Short: "Generate one flip sequence and print every step",
		Long: `Build the requested topology, then pull events from its root unit:
one line per advance, showing the board and the step's signal. The run
makes two passes by default (forward, then backward), like the
reference tables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.Kind = args[0]
			return executeRun(cmd.OutOrStdout(), spec, !noColor)
		},
	}

	cmd.Flags().IntVarP(&spec.Lights, "lights", "n", 4, "number of lights")
	cmd.Flags().IntVarP(&spec.Branch, "branch", "m", 0, "split index for branch-chain")
	cmd.Flags().IntSliceVarP(&spec.Endpoints, "endpoints", "e", nil, "endpoint set for segment-chain")
	cmd.Flags().StringVar(&spec.Initial, "initial", "", "initial board for fence, e.g. 000111")
	cmd.Flags().IntVarP(&spec.Passes, "passes", "p", 0, "number of passes (default 2)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}

// executeRun builds and drives one run, streaming each step to w.
func executeRun(w io.Writer, spec runSpec, color bool) error {
	kind, err := trolls.ParseKind(spec.Kind)
	if err != nil {
		return err
	}

	var opts []trolls.Option
	if spec.Branch > 0 {
		opts = append(opts, trolls.WithBranchIndex(spec.Branch))
	}
	if len(spec.Endpoints) > 0 {
		opts = append(opts, trolls.WithEndpoints(spec.Endpoints...))
	}
	switch {
	case spec.Initial != "":
		bits, err := parseBits(spec.Initial)
		if err != nil {
			return err
		}
		opts = append(opts, trolls.WithInitial(bits))
	case kind == trolls.Fence:
		// Reproduce the reference tables: fences start striped.
		opts = append(opts, trolls.WithInitial(trolls.FenceSeed(spec.Lights)))
	}

	sys, err := trolls.Build(kind, spec.Lights, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s  Initial\n", renderBits(sys.Snapshot(), color))
	dopts := []driver.Option{
		driver.WithOnStep(func(st driver.Step) error {
			fmt.Fprintf(w, "%s  %s\n", renderBits(st.Lights, color), st.Signal)
			return nil
		}),
	}
	if spec.Passes > 0 {
		dopts = append(dopts, driver.WithPasses(spec.Passes))
	}
	_, err = driver.Run(sys, dopts...)
	return err
}

// parseBits reads a board spelled as a bit string, e.g. "000111".
func parseBits(s string) ([]lights.Bit, error) {
	bits := make([]lights.Bit, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits[i] = lights.Off
		case '1':
			bits[i] = lights.On
		default:
			return nil, fmt.Errorf("initial board %q: cell %d is %q, want 0 or 1", s, i+1, c)
		}
	}
	return bits, nil
}
