// Package search defines the capability contract, tunable options, result
// type and error definitions for state-space search.
package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for engine construction.
var (
	// ErrUnsupportedAlgorithm is returned when the algorithm selector is not
	// one of BreadthFirst or DepthFirst.
	ErrUnsupportedAlgorithm = errors.New("search: unsupported algorithm")

	// ErrMissingCapability is returned when the goal test or the successor
	// generator is not bound.
	ErrMissingCapability = errors.New("search: missing capability")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the traversal order used by Solve.
type Algorithm int

const (
	// BreadthFirst expands nodes in FIFO order. The first path found has
	// the minimum number of steps.
	BreadthFirst Algorithm = iota
	// DepthFirst expands the most recently generated node first.
	// It returns a path if one exists, not necessarily the shortest.
	DepthFirst
)

// String returns the short name of the algorithm ("bfs", "dfs").
func (a Algorithm) String() string {
	switch a {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name to an Algorithm. Both the short ("bfs") and
// long ("breadth-first") spellings are accepted, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadth_first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depth_first", "depthfirst":
		return DepthFirst, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// Stateful is satisfied by state types that carry their own goal test and
// successor generator as methods.
type Stateful[T any] interface {
	IsGoal() bool
	Successors() []T
}

// Capabilities bundles the two behaviors the engine needs from a state
// space. Both must be pure: the engine may call them repeatedly with the
// same input and never expects side effects.
type Capabilities[T any] struct {
	// IsGoal reports whether a state is an acceptable solution.
	IsGoal func(T) bool

	// Successors returns the states reachable in one step, in the order
	// they should be explored.
	Successors func(T) []T
}

// MethodCapabilities binds the methods of a Stateful type.
func MethodCapabilities[T Stateful[T]]() Capabilities[T] {
	return Capabilities[T]{
		IsGoal:     func(s T) bool { return s.IsGoal() },
		Successors: func(s T) []T { return s.Successors() },
	}
}

// Option configures an Engine via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds the parameters of a search engine.
type Options struct {
	// Algorithm selects the traversal order. Default BreadthFirst.
	Algorithm Algorithm

	// Logger receives progress narration. Default discards everything.
	Logger *slog.Logger

	// MaxDepth, if > 0, stops generating successors of nodes at that depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnExpand is called once per expanded node, before its successors
	// are generated, with the node's depth.
	OnExpand func(depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - BreadthFirst traversal
//   - a logger that discards output
//   - no depth limit
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	// Same discard logger as the CLI's logging.NewNop; this package stays
	// free of the command's internals.
	return Options{
		Algorithm: BreadthFirst,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxDepth:  0,
		OnExpand:  func(int) {},
	}
}

// WithAlgorithm selects the traversal algorithm.
// Unknown values are rejected by the constructor with ErrUnsupportedAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithLogger routes progress narration to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth bounds how deep the search may go.
//
//	d > 0: nodes at depth d are not expanded
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnExpand registers a hook called once per expanded node.
func WithOnExpand(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of one Run.
type Result[T any] struct {
	// Path runs from the initial state to the goal, both inclusive.
	// It is empty when no solution exists.
	Path []T

	// Found distinguishes a solution from exhaustion of the state space.
	Found bool

	// Expanded counts successor-generator invocations.
	Expanded int

	// Discovered counts distinct states placed in the visited set.
	Discovered int

	// Algorithm is the traversal that produced this result.
	Algorithm Algorithm
}

// Steps returns the number of moves in the path (edges), or -1 when no
// solution was found.
func (r Result[T]) Steps() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}
