package puzzles

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/statesearch/search"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional moves: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional moves: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a position in a maze. X is the column, Y the row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// MazeOptions contains tunable parameters for maze construction.
type MazeOptions struct {
	// OpenThreshold is the minimum cell value that can be walked on.
	OpenThreshold int
	// Conn chooses 4- or 8-directional moves.
	Conn Connectivity
}

// DefaultMazeOptions returns OpenThreshold=1 (values ≥1 are open) and Conn4.
func DefaultMazeOptions() MazeOptions {
	return MazeOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
	}
}

// Maze treats a 2D integer grid as a state space over Cells. It is
// immutable once built. CellValues[y][x] holds the original input value.
type Maze struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	OpenThreshold   int
	neighborOffsets [][2]int
}

// NewMaze constructs a Maze from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(W×H) time and memory.
func NewMaze(values [][]int, opts MazeOptions) (*Maze, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Maze{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		OpenThreshold:   opts.OpenThreshold,
		neighborOffsets: offsets,
	}, nil
}

// ParseMaze reads a text maze: '#' is a wall, any other rune is open,
// 'S' marks the start and 'G' the goal. Blank lines are ignored.
func ParseMaze(text string, conn Connectivity) (m *Maze, start, goal Cell, err error) {
	var rows [][]int
	var starts, goals []Cell
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		y := len(rows)
		row := make([]int, 0, len(line))
		for x, r := range []rune(line) {
			switch r {
			case '#':
				row = append(row, 0)
				continue
			case 'S':
				starts = append(starts, Cell{X: x, Y: y})
			case 'G':
				goals = append(goals, Cell{X: x, Y: y})
			}
			row = append(row, 1)
		}
		rows = append(rows, row)
	}
	if m, err = NewMaze(rows, MazeOptions{OpenThreshold: 1, Conn: conn}); err != nil {
		return nil, Cell{}, Cell{}, err
	}
	if len(starts) != 1 || len(goals) != 1 {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: found %d S and %d G", ErrMarker, len(starts), len(goals))
	}

	return m, starts[0], goals[0], nil
}

// InBounds reports whether c lies within the maze.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// IsOpen reports whether c is inside the maze and not a wall.
func (m *Maze) IsOpen(c Cell) bool {
	return m.InBounds(c) && m.CellValues[c.Y][c.X] >= m.OpenThreshold
}

// Successors returns the open neighbors of c, clockwise from north.
func (m *Maze) Successors(c Cell) []Cell {
	out := make([]Cell, 0, len(m.neighborOffsets))
	for _, d := range m.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if m.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// Capabilities returns the goal test and successor generator for a walk
// to goal. Returns ErrOutOfBounds or ErrBlocked if goal is not walkable.
func (m *Maze) Capabilities(goal Cell) (search.Capabilities[Cell], error) {
	if err := m.check(goal); err != nil {
		return search.Capabilities[Cell]{}, err
	}

	return search.Capabilities[Cell]{
		IsGoal:     func(c Cell) bool { return c == goal },
		Successors: m.Successors,
	}, nil
}

// Solver builds a search engine walking from start to goal.
func (m *Maze) Solver(start, goal Cell, opts ...search.Option) (*search.Engine[Cell], error) {
	if err := m.check(start); err != nil {
		return nil, err
	}
	caps, err := m.Capabilities(goal)
	if err != nil {
		return nil, err
	}
	return search.NewWithCapabilities(start, caps, opts...)
}

func (m *Maze) check(c Cell) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d maze", ErrOutOfBounds, c, m.Width, m.Height)
	}
	if !m.IsOpen(c) {
		return fmt.Errorf("%w: %v", ErrBlocked, c)
	}
	return nil
}

// Render draws the maze with '#' for walls, '.' for open cells and '*'
// for the cells of path.
func (m *Maze) Render(path []Cell) string {
	on := make(map[Cell]bool, len(path))
	for _, c := range path {
		on[c] = true
	}
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{X: x, Y: y}
			switch {
			case !m.IsOpen(c):
				sb.WriteByte('#')
			case on[c]:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
