package search

import (
	"fmt"
	"io"
)

// PrintSolution writes path to w one state per step, numbered from 1.
// States are rendered with %v, so fmt.Stringer implementations are used.
// An empty path prints only the header.
func PrintSolution[T any](w io.Writer, path []T) error {
	if _, err := fmt.Fprint(w, "Printing solution:\n\n"); err != nil {
		return fmt.Errorf("search: print solution: %w", err)
	}
	for i, s := range path {
		if _, err := fmt.Fprintf(w, "Step %d:\n%v\n", i+1, s); err != nil {
			return fmt.Errorf("search: print step %d: %w", i+1, err)
		}
	}

	return nil
}
