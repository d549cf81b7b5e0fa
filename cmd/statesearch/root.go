package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statesearch/internal/logging"
	"github.com/katalvlaran/statesearch/search"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	algorithm string
	logLevel  string
	maxDepth  int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "statesearch",
		Short:         "Solve puzzles by breadth-first or depth-first state-space search",
		Long:          `statesearch explores the states of a puzzle from its initial configuration until it reaches a goal, then prints every step of the path it found.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&flags.algorithm, "algorithm", "bfs", "Search algorithm: bfs or dfs")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error or off")
	root.PersistentFlags().IntVar(&flags.maxDepth, "max-depth", 0, "Do not search deeper than this many steps (0 = unlimited)")

	root.AddCommand(newLineCmd(flags), newSolveCmd(flags), newVersionCmd())
	return root
}

// logger builds the stderr logger from --log-level. "off" silences it.
func (f *globalFlags) logger() (*slog.Logger, error) {
	if strings.EqualFold(strings.TrimSpace(f.logLevel), "off") {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// options translates the global flags into engine options. A non-empty
// override (from a problem file) wins over --algorithm unless the flag
// was set explicitly.
func (f *globalFlags) options(cmd *cobra.Command, override string, depth int) ([]search.Option, error) {
	name := f.algorithm
	if override != "" && !cmd.Flags().Changed("algorithm") {
		name = override
	}
	algo, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	if depth == 0 || cmd.Flags().Changed("max-depth") {
		depth = f.maxDepth
	}
	log, err := f.logger()
	if err != nil {
		return nil, err
	}
	log.Debug("configured", "algorithm", algo.String(), "max_depth", depth)

	return []search.Option{
		search.WithAlgorithm(algo),
		search.WithMaxDepth(depth),
		search.WithLogger(log),
	}, nil
}

// printResult writes the solution path, or a notice when there is none.
func printResult[T any](out io.Writer, res search.Result[T]) error {
	if !res.Found {
		_, err := fmt.Fprintln(out, "Solution Not Found!")
		return err
	}
	if err := search.PrintSolution(out, res.Path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d steps (%s, %d expanded)\n", res.Steps(), res.Algorithm, res.Expanded)
	return err
}
