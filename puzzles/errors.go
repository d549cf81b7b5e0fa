package puzzles

import "errors"

var (
	// ErrEmptyGrid indicates the maze has no rows or no columns.
	ErrEmptyGrid = errors.New("puzzles: maze must have at least one row and one column")
	// ErrNonRectangular indicates maze rows of differing lengths.
	ErrNonRectangular = errors.New("puzzles: all maze rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the maze.
	ErrOutOfBounds = errors.New("puzzles: cell out of bounds")
	// ErrBlocked indicates a start or goal placed on a wall.
	ErrBlocked = errors.New("puzzles: cell is a wall")
	// ErrMarker indicates a text maze without exactly one start and one goal marker.
	ErrMarker = errors.New("puzzles: maze needs exactly one S and one G")
	// ErrBadTiles indicates a sliding-tile board that is not a permutation of 0..8.
	ErrBadTiles = errors.New("puzzles: tiles must be a permutation of 0..8")
	// ErrBadJugs indicates impossible jug capacities or target.
	ErrBadJugs = errors.New("puzzles: invalid jug capacities or target")
	// ErrUnknownNode indicates a graph start or goal that is not a known node.
	ErrUnknownNode = errors.New("puzzles: unknown graph node")
)
