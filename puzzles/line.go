package puzzles

import "strconv"

// Line is a position on the integer line together with the position to reach.
type Line struct {
	Value  int
	Target int
}

// IsGoal reports whether the walk reached its target.
func (l Line) IsGoal() bool { return l.Value == l.Target }

// Successors steps up first, then down.
func (l Line) Successors() []Line {
	return []Line{
		{Value: l.Value + 1, Target: l.Target},
		{Value: l.Value - 1, Target: l.Target},
	}
}

func (l Line) String() string { return strconv.Itoa(l.Value) }

// LineGoal returns a goal test matching target.
func LineGoal(target int) func(int) bool {
	return func(n int) bool { return n == target }
}

// LineSuccessors is the free-function form of Line.Successors.
func LineSuccessors(n int) []int { return []int{n + 1, n - 1} }
