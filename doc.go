// Package statesearch is a small toolkit for solving puzzles and planning
// problems by exploring their state space.
//
// 🚀 What is statesearch?
//
//	A pure-Go, generic search engine plus a handful of ready-made puzzles:
//		• search/   — Engine[T]: breadth-first (shortest path) and depth-first search
//		• puzzles/  — integer line, grid maze, sliding tiles, water jugs, explicit graph
//		• cmd/statesearch — command-line driver reading YAML problem files
//
// ✨ Why statesearch?
//
//   - Bring your own state: any comparable type works, no graph to build up front
//   - Two ways to plug in behavior: IsGoal/Successors methods or plain functions
//   - Misconfiguration is caught when the engine is built, never mid-search
//   - Deterministic: successor order decides which of several shortest paths wins
//
// Quick example:
//
//	eng, _ := search.New(5,
//		func(n int) bool { return n == 9 },
//		func(n int) []int { return []int{n + 1, n - 1} },
//	)
//	fmt.Println(eng.Solve()) // [5 6 7 8 9]
//
//	go get github.com/katalvlaran/statesearch/search
package statesearch
