package puzzles

import (
	"fmt"
	"strings"
)

// Tiles is a 3×3 sliding-tile board in row-major order; 0 is the blank.
type Tiles [9]uint8

// SolvedTiles is the goal board: 1..8 followed by the blank.
var SolvedTiles = Tiles{1, 2, 3, 4, 5, 6, 7, 8, 0}

// ParseTiles reads nine digits 0..8, ignoring spaces, commas and
// newlines. Returns ErrBadTiles unless every digit occurs exactly once.
func ParseTiles(s string) (Tiles, error) {
	var t Tiles
	var seen [9]bool
	n := 0
	for _, r := range s {
		switch {
		case r == ' ' || r == ',' || r == '\n' || r == '\t' || r == '\r':
			continue
		case r < '0' || r > '8':
			return Tiles{}, fmt.Errorf("%w: unexpected %q", ErrBadTiles, r)
		}
		if n == len(t) {
			return Tiles{}, fmt.Errorf("%w: more than 9 tiles", ErrBadTiles)
		}
		v := uint8(r - '0')
		if seen[v] {
			return Tiles{}, fmt.Errorf("%w: duplicate %d", ErrBadTiles, v)
		}
		seen[v] = true
		t[n] = v
		n++
	}
	if n != len(t) {
		return Tiles{}, fmt.Errorf("%w: got %d tiles", ErrBadTiles, n)
	}
	return t, nil
}

// IsGoal reports whether t is SolvedTiles.
func (t Tiles) IsGoal() bool { return t == SolvedTiles }

// Successors slides the blank up, down, left, then right.
func (t Tiles) Successors() []Tiles {
	b := t.blank()
	row, col := b/3, b%3
	out := make([]Tiles, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r > 2 || c < 0 || c > 2 {
			continue
		}
		next := t
		j := r*3 + c
		next[b], next[j] = next[j], next[b]
		out = append(out, next)
	}
	return out
}

// Solvable reports whether SolvedTiles is reachable from t, i.e. the
// number of inversions among the non-blank tiles is even.
func (t Tiles) Solvable() bool {
	inv := 0
	for i := 0; i < len(t); i++ {
		for j := i + 1; j < len(t); j++ {
			if t[i] != 0 && t[j] != 0 && t[i] > t[j] {
				inv++
			}
		}
	}
	return inv%2 == 0
}

func (t Tiles) blank() int {
	for i, v := range t {
		if v == 0 {
			return i
		}
	}
	return -1
}

// String renders the board as three rows, the blank shown as '_'.
func (t Tiles) String() string {
	var sb strings.Builder
	for i, v := range t {
		if v == 0 {
			sb.WriteByte('_')
		} else {
			sb.WriteByte('0' + v)
		}
		switch {
		case i == len(t)-1:
		case i%3 == 2:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
