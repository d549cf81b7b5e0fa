package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/puzzles"
	"github.com/katalvlaran/statesearch/search"
)

func newLineCmd(flags *globalFlags) *cobra.Command {
	var start, target int
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Walk the integer line from --start to --target one unit at a time",
		Long: `line searches the integers from --start to --target, stepping up or down by one.

The line has no end, so with --algorithm dfs and no --max-depth the search
is bounded by the distance between start and target.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			depth := 0
			if algo, err := search.ParseAlgorithm(flags.algorithm); err == nil && algo == search.DepthFirst {
				depth = distance(start, target)
			}
			opts, err := flags.options(cmd, "", depth)
			if err != nil {
				return err
			}
			eng, err := search.New(start, puzzles.LineGoal(target), puzzles.LineSuccessors, opts...)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), eng.Run())
		},
	}
	cmd.Flags().IntVar(&start, "start", 5, "Initial value")
	cmd.Flags().IntVar(&target, "target", 9, "Value to reach")
	return cmd
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
