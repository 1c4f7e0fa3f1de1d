package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glimmer/trolls"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glimmer",
		Short:         "Gray-style flip sequences from coupled troll topologies",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(), newBatchCmd(), newKindsCmd())
	return root
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported topology kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range trolls.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}
