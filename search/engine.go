package search

import (
	"fmt"
	"log/slog"
)

// Engine searches one state space from one initial state.
// An Engine holds no per-search state; Solve may be called repeatedly and
// returns the same path every time.
type Engine[T comparable] struct {
	initial  T
	caps     Capabilities[T]
	opts     Options
	strategy func(w *walker[T], root int) int
}

// New builds an Engine from free functions.
// Returns ErrMissingCapability if either function is nil,
// ErrUnsupportedAlgorithm for an unknown selector, or ErrOptionViolation
// for invalid options.
func New[T comparable](initial T, isGoal func(T) bool, successors func(T) []T, opts ...Option) (*Engine[T], error) {
	return NewWithCapabilities(initial, Capabilities[T]{IsGoal: isGoal, Successors: successors}, opts...)
}

// NewFromState builds an Engine whose capabilities are the IsGoal and
// Successors methods of the state type itself.
func NewFromState[T interface {
	comparable
	Stateful[T]
}](initial T, opts ...Option) (*Engine[T], error) {
	return NewWithCapabilities(initial, MethodCapabilities[T](), opts...)
}

// NewWithCapabilities builds an Engine from an explicit capability pair.
func NewWithCapabilities[T comparable](initial T, caps Capabilities[T], opts ...Option) (*Engine[T], error) {
	if caps.IsGoal == nil {
		return nil, fmt.Errorf("%w: goal test is nil", ErrMissingCapability)
	}
	if caps.Successors == nil {
		return nil, fmt.Errorf("%w: successor generator is nil", ErrMissingCapability)
	}

	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine[T]{initial: initial, caps: caps, opts: o}
	switch o.Algorithm {
	case BreadthFirst:
		e.strategy = (*walker[T]).breadthFirst
	case DepthFirst:
		e.strategy = (*walker[T]).depthFirst
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, o.Algorithm)
	}

	return e, nil
}

// Initial returns the state the search starts from.
func (e *Engine[T]) Initial() T { return e.initial }

// Algorithm returns the configured traversal algorithm.
func (e *Engine[T]) Algorithm() Algorithm { return e.opts.Algorithm }

// Solve returns the path from the initial state to a goal state, both
// inclusive. An empty path means no goal is reachable; a single-element
// path means the initial state is already a goal.
//
// Panics raised by the goal test or successor generator propagate
// unchanged.
func (e *Engine[T]) Solve() []T {
	return e.Run().Path
}

// Run is Solve with traversal statistics.
func (e *Engine[T]) Run() Result[T] {
	log := e.opts.Logger.With(slog.String("algorithm", e.opts.Algorithm.String()))
	log.Debug("solving", slog.Any("initial", e.initial))

	w := newWalker(e)
	w.visited[e.initial] = struct{}{}

	// Base case: no traversal when the initial state is already a goal.
	if e.caps.IsGoal(e.initial) {
		w.res.Path = []T{e.initial}
		w.res.Found = true
		w.res.Discovered = 1
		log.Info("solution found", slog.Int("steps", 0), slog.Int("expanded", 0))

		return w.res
	}

	root := w.arena.add(e.initial, noParent)
	if goal := e.strategy(w, root); goal != noParent {
		w.res.Path = w.arena.pathTo(goal)
		w.res.Found = true
	}
	w.res.Discovered = len(w.visited)

	if w.res.Found {
		log.Info("solution found",
			slog.Int("steps", len(w.res.Path)-1),
			slog.Int("expanded", w.res.Expanded),
			slog.Int("discovered", w.res.Discovered))
	} else {
		log.Info("solution not found",
			slog.Int("expanded", w.res.Expanded),
			slog.Int("discovered", w.res.Discovered))
	}

	return w.res
}

// walker encapsulates the mutable state of one search.
type walker[T comparable] struct {
	caps    Capabilities[T]
	opts    Options
	arena   arena[T]
	visited map[T]struct{}
	res     Result[T]

	// best holds the shallowest depth each state was discovered at.
	// Only depth-first search under a depth limit uses it; nil otherwise.
	best map[T]int
}

func newWalker[T comparable](e *Engine[T]) *walker[T] {
	w := &walker[T]{
		caps:    e.caps,
		opts:    e.opts,
		visited: make(map[T]struct{}),
		res:     Result[T]{Algorithm: e.opts.Algorithm},
	}
	if e.opts.Algorithm == DepthFirst && e.opts.MaxDepth > 0 {
		w.best = map[T]int{e.initial: 0}
	}

	return w
}

// expand generates the successors of node n. Each unseen successor is
// marked visited and added to the arena; the first one that satisfies the
// goal test is returned immediately and its later siblings are never
// examined. Non-goal successors are handed to push in generation order.
// Returns noParent when no goal was found among the successors.
//
// When best is tracked, a visited state reached again by a shorter route
// is re-added at the shallower depth so the depth limit does not cut off
// a path that fits within it.
func (w *walker[T]) expand(n int, push func(int)) int {
	cur := w.arena.nodes[n]
	if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
		return noParent
	}
	if w.best != nil && cur.depth > w.best[cur.state] {
		return noParent // superseded by a shallower copy
	}
	w.opts.OnExpand(cur.depth)
	w.res.Expanded++

	for _, s := range w.caps.Successors(cur.state) {
		if _, seen := w.visited[s]; seen {
			if w.best == nil || cur.depth+1 >= w.best[s] {
				continue
			}
			// a goal ends the search on first discovery, so s is not one
			w.best[s] = cur.depth + 1
			push(w.arena.add(s, n))
			continue
		}
		w.visited[s] = struct{}{}
		if w.best != nil {
			w.best[s] = cur.depth + 1
		}
		idx := w.arena.add(s, n)
		if w.caps.IsGoal(s) {
			return idx
		}
		push(idx)
	}

	return noParent
}
