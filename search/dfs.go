package search

// depthFirst expands the most recently generated node first (LIFO) and
// returns the arena index of the first goal discovered, or noParent.
//
// Without a depth limit every state is discovered at most once, so the
// search terminates on any finite reachable space. The path returned is
// not necessarily the shortest; use WithMaxDepth to bound it on deep or
// infinite spaces. Under a limit a state is expanded again whenever it is
// reached at a shallower depth than before, so any goal within the limit
// is found. Expanded may then exceed Discovered.
func (w *walker[T]) depthFirst(root int) int {
	stack := []int{root}
	push := func(idx int) { stack = append(stack, idx) }

	found := noParent
	for len(stack) > 0 && found == noParent {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		found = w.expand(n, push)
	}

	return found
}
