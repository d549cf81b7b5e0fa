// Package search provides uninformed state-space search over an implicit
// graph, returning the path from an initial state to a goal state.
//
// What
//
//   - The caller supplies an initial state of any comparable type T and two
//     capabilities: a goal test and a successor generator.
//   - Capabilities are bound once at construction, either as free functions
//     (New) or as the IsGoal/Successors methods of T (NewFromState).
//   - Solve returns the path initial → goal (inclusive):
//   - len == 1: the initial state is already a goal
//   - len == 0: no goal is reachable
//   - Run additionally reports how many nodes were expanded and how many
//     distinct states were discovered.
//
// Why
//
//   - Solve puzzles and small planning problems without building the
//     state graph up front.
//   - BreadthFirst returns a path with the minimum number of steps.
//
// Determinism
//
//	Successors are examined in the order the generator returns them, and
//	the first goal discovered in that order wins. When a goal appears among
//	a node's successors the search stops immediately; siblings generated
//	after it are never looked at. Repeated Solve calls on the same Engine
//	return the same path.
//
// Complexity (V = reachable states, E = transitions between them)
//
//   - Time:   O(V + E) goal tests and successor lookups
//   - Memory: O(V) for the node arena, frontier and visited set
//
// Usage
//
//	eng, err := search.New(5,
//		func(n int) bool { return n == 9 },
//		func(n int) []int { return []int{n + 1, n - 1} },
//	)
//	if err != nil {
//		// ErrMissingCapability, ErrUnsupportedAlgorithm or ErrOptionViolation
//	}
//	path := eng.Solve() // [5 6 7 8 9]
//
// Options
//
//   - DefaultOptions():     BreadthFirst, discarding logger, no depth limit.
//   - WithAlgorithm(a):     BreadthFirst or DepthFirst.
//   - WithLogger(l):        progress narration through log/slog.
//   - WithMaxDepth(d):      do not expand nodes at depth d (>0). Both
//     algorithms find any goal within d steps; depth-first re-expands a
//     state reached again by a shorter route.
//   - WithOnExpand(fn):     hook called once per expanded node.
//
// Errors
//
// All errors are reported by the constructors; Solve itself never fails.
//
//   - ErrMissingCapability     if the goal test or successor generator is nil.
//   - ErrUnsupportedAlgorithm  if the selector is not BreadthFirst or DepthFirst.
//   - ErrOptionViolation       if an option value is invalid.
package search
