package search

// noParent marks the root of the parent chain.
const noParent = -1

// node pairs a discovered state with the arena index of the node that
// generated it. Nodes are never mutated after creation.
type node[T any] struct {
	state  T
	parent int
	depth  int
}

// arena owns every node created during one search. Nodes refer to their
// parent by index, so dropping the arena releases the whole tree.
type arena[T any] struct {
	nodes []node[T]
}

// add appends a node and returns its index.
func (a *arena[T]) add(state T, parent int) int {
	depth := 0
	if parent != noParent {
		depth = a.nodes[parent].depth + 1
	}
	a.nodes = append(a.nodes, node[T]{state: state, parent: parent, depth: depth})

	return len(a.nodes) - 1
}

// pathTo walks parent links back from idx to the root and returns the
// states in root → idx order.
func (a *arena[T]) pathTo(idx int) []T {
	path := make([]T, 0, a.nodes[idx].depth+1)
	for cur := idx; cur != noParent; cur = a.nodes[cur].parent {
		path = append(path, a.nodes[cur].state)
	}
	// reverse to get initial → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
