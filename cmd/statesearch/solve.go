package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSolveCmd(flags *globalFlags) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the puzzle described in a YAML problem file",
		Long: `Reads a problem file such as

  kind: jugs
  algorithm: bfs
  jugs: {cap_a: 3, cap_b: 5, target: 4}

and prints the path from the initial state to the goal. Supported kinds are
line, maze, tiles, jugs and graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open problem: %w", err)
			}
			defer f.Close()

			p, err := LoadProblem(f)
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, p.Algorithm, p.MaxDepth)
			if err != nil {
				return err
			}
			return p.solve(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the YAML problem file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
