package puzzles

import (
	"fmt"

	"github.com/katalvlaran/statesearch/search"
)

// JugState holds the current volume in each jug.
type JugState struct {
	A, B int
}

func (s JugState) String() string { return fmt.Sprintf("A=%d B=%d", s.A, s.B) }

// JugProblem asks for Target units in either jug, given two jugs of
// capacity CapA and CapB, an unlimited tap and a drain.
type JugProblem struct {
	CapA, CapB int
	Target     int
}

// Validate returns ErrBadJugs for non-positive capacities or a target
// that fits in neither jug.
func (p JugProblem) Validate() error {
	if p.CapA <= 0 || p.CapB <= 0 || p.Target < 0 || p.Target > max(p.CapA, p.CapB) {
		return fmt.Errorf("%w: capacities %d/%d, target %d", ErrBadJugs, p.CapA, p.CapB, p.Target)
	}
	return nil
}

// IsGoal reports whether either jug holds exactly Target.
func (p JugProblem) IsGoal(s JugState) bool {
	return s.A == p.Target || s.B == p.Target
}

// Successors applies, in order: fill A, fill B, empty A, empty B,
// pour A into B, pour B into A. Moves that change nothing are dropped.
func (p JugProblem) Successors(s JugState) []JugState {
	ab := min(s.A, p.CapB-s.B)
	ba := min(s.B, p.CapA-s.A)
	moves := [...]JugState{
		{A: p.CapA, B: s.B},
		{A: s.A, B: p.CapB},
		{A: 0, B: s.B},
		{A: s.A, B: 0},
		{A: s.A - ab, B: s.B + ab},
		{A: s.A + ba, B: s.B - ba},
	}
	out := make([]JugState, 0, len(moves))
	for _, m := range moves {
		if m != s {
			out = append(out, m)
		}
	}
	return out
}

// Solver builds a search engine starting with both jugs empty.
func (p JugProblem) Solver(opts ...search.Option) (*search.Engine[JugState], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return search.New(JugState{}, p.IsGoal, p.Successors, opts...)
}
