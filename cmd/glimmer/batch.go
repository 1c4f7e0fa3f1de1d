package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// scenario is the YAML schema for a batch file:
//
//	runs:
//	  - kind: chain
//	    lights: 3
//	  - kind: segment-chain
//	    lights: 6
//	    endpoints: [1, 3, 4]
type scenario struct {
	Runs []runSpec `yaml:"runs"`
}

func newBatchCmd() *cobra.Command {
	var (
		configPath string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every sequence described in a YAML scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return fmt.Errorf("read scenario: %w", err)
			}
			var sc scenario
			if err := yaml.Unmarshal(data, &sc); err != nil {
				return fmt.Errorf("parse scenario: %w", err)
			}
			if len(sc.Runs) == 0 {
				return fmt.Errorf("scenario %s declares no runs", configPath)
			}

			out := cmd.OutOrStdout()
			for i, spec := range sc.Runs {
				fmt.Fprintf(out, "# run %d: %s n=%d\n", i+1, spec.Kind, spec.Lights)
				if err := executeRun(out, spec, !noColor); err != nil {
					return fmt.Errorf("run %d (%s): %w", i+1, spec.Kind, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML scenario file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
