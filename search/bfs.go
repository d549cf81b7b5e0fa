package search

// breadthFirst expands nodes in FIFO order starting from root and returns
// the arena index of the first goal discovered, or noParent once the
// frontier is exhausted.
//
// Nodes are expanded in non-decreasing depth, so the first goal found is
// at minimum depth. A goal found among a node's successors ends the search
// at once: the remaining siblings of that node are not examined.
func (w *walker[T]) breadthFirst(root int) int {
	queue := []int{root}
	enqueue := func(idx int) { queue = append(queue, idx) }

	found := noParent
	for len(queue) > 0 && found == noParent {
		n := queue[0]
		queue = queue[1:]
		found = w.expand(n, enqueue)
	}

	return found
}
