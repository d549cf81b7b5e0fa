// Command statesearch solves small puzzles by state-space search and
// prints the path it finds.
//
//	statesearch line --start 5 --target 9
//	statesearch solve -f maze.yaml --algorithm dfs --log-level debug
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
