package puzzles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statesearch/puzzles"
	"github.com/katalvlaran/statesearch/search"
)

const smallMaze = `
S.#.
.#..
...G
`

// TestNewMaze_Errors verifies that NewMaze rejects empty or ragged inputs.
func TestNewMaze_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, puzzles.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, puzzles.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, puzzles.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzles.NewMaze(tc.grid, puzzles.DefaultMazeOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewMaze_CopiesInput(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	m, err := puzzles.NewMaze(grid, puzzles.DefaultMazeOptions())
	require.NoError(t, err)
	grid[0][1] = 0
	assert.True(t, m.IsOpen(puzzles.Cell{X: 1, Y: 0}))
}

func TestParseMaze(t *testing.T) {
	m, start, goal, err := puzzles.ParseMaze(smallMaze, puzzles.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, puzzles.Cell{X: 0, Y: 0}, start)
	assert.Equal(t, puzzles.Cell{X: 3, Y: 2}, goal)
	assert.False(t, m.IsOpen(puzzles.Cell{X: 2, Y: 0}))
	assert.False(t, m.IsOpen(puzzles.Cell{X: -1, Y: 0}))

	_, _, _, err = puzzles.ParseMaze("S..\n...", puzzles.Conn4)
	assert.ErrorIs(t, err, puzzles.ErrMarker)
	_, _, _, err = puzzles.ParseMaze("S..\nG.", puzzles.Conn4)
	assert.ErrorIs(t, err, puzzles.ErrNonRectangular)
}

func TestMaze_SuccessorsOrder(t *testing.T) {
	m, err := puzzles.NewMaze([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, puzzles.DefaultMazeOptions())
	require.NoError(t, err)
	center := puzzles.Cell{X: 1, Y: 1}
	assert.Equal(t, []puzzles.Cell{{1, 0}, {2, 1}, {1, 2}, {0, 1}}, m.Successors(center))
	assert.Equal(t, []puzzles.Cell{{1, 0}, {0, 1}}, m.Successors(puzzles.Cell{}))

	m8, err := puzzles.NewMaze([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, puzzles.MazeOptions{OpenThreshold: 1, Conn: puzzles.Conn8})
	require.NoError(t, err)
	assert.Len(t, m8.Successors(center), 8)
}

func TestMaze_Solve(t *testing.T) {
	m, start, goal, err := puzzles.ParseMaze(smallMaze, puzzles.Conn4)
	require.NoError(t, err)

	eng, err := m.Solver(start, goal)
	require.NoError(t, err)
	path := eng.Solve()
	assert.Equal(t, []puzzles.Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {3, 2}}, path)
	assert.Equal(t, "*.#.\n*#..\n****\n", m.Render(path))

	// diagonals cut the walk to three moves
	m8, start, goal, err := puzzles.ParseMaze(smallMaze, puzzles.Conn8)
	require.NoError(t, err)
	eng, err = m8.Solver(start, goal, search.WithAlgorithm(search.BreadthFirst))
	require.NoError(t, err)
	assert.Len(t, eng.Solve(), 4)
}

func TestMaze_WalledOff(t *testing.T) {
	m, start, goal, err := puzzles.ParseMaze("S#.\n##G", puzzles.Conn8)
	require.NoError(t, err)
	eng, err := m.Solver(start, goal)
	require.NoError(t, err)
	assert.Empty(t, eng.Solve())
}

func TestMaze_SolverErrors(t *testing.T) {
	m, _, _, err := puzzles.ParseMaze(smallMaze, puzzles.Conn4)
	require.NoError(t, err)

	_, err = m.Solver(puzzles.Cell{X: 2, Y: 0}, puzzles.Cell{X: 3, Y: 2})
	assert.ErrorIs(t, err, puzzles.ErrBlocked)
	_, err = m.Solver(puzzles.Cell{}, puzzles.Cell{X: 9, Y: 9})
	assert.ErrorIs(t, err, puzzles.ErrOutOfBounds)
	_, err = m.Capabilities(puzzles.Cell{X: 1, Y: 1})
	assert.ErrorIs(t, err, puzzles.ErrBlocked)
}
