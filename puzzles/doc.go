// Package puzzles provides ready-made state spaces for package search.
//
// Each puzzle exposes its goal test and successor generator either as
// methods on a comparable state type (Line, Tiles) for search.NewFromState,
// or as a search.Capabilities value built by a problem description (Maze,
// JugProblem, Graph) for search.NewWithCapabilities.
//
//   - Line:  integer walk, n → {n+1, n-1}.
//   - Maze:  2D grid with walls, 4- or 8-connectivity.
//   - Tiles: the 3×3 sliding-tile puzzle.
//   - Jugs:  measure a volume with two unmarked jugs.
//   - Graph: explicit adjacency lists with a goal set.
//
// Successors are always generated in a fixed, documented order, so the
// path search picks among equally short solutions is reproducible.
package puzzles
