package puzzles

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/statesearch/search"
)

// Graph is an explicit directed graph given as adjacency lists.
// Neighbors are explored in the order they are listed.
type Graph struct {
	adj   map[string][]string
	nodes map[string]bool
}

// NewGraph copies edges into a Graph. Every node named as a key or as a
// neighbor is known to the graph.
func NewGraph(edges map[string][]string) *Graph {
	g := &Graph{
		adj:   make(map[string][]string, len(edges)),
		nodes: make(map[string]bool, len(edges)),
	}
	for from, tos := range edges {
		g.nodes[from] = true
		g.adj[from] = append([]string(nil), tos...)
		for _, to := range tos {
			g.nodes[to] = true
		}
	}
	return g
}

// Nodes returns the known node names in sorted order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Successors returns the neighbors of n in listed order.
func (g *Graph) Successors(n string) []string { return g.adj[n] }

// Solver builds a search engine from start to any of goals.
// Returns ErrUnknownNode if start or a goal is not in the graph.
func (g *Graph) Solver(start string, goals []string, opts ...search.Option) (*search.Engine[string], error) {
	if !g.nodes[start] {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	set := make(map[string]bool, len(goals))
	for _, goal := range goals {
		if !g.nodes[goal] {
			return nil, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
		}
		set[goal] = true
	}
	return search.New(start, func(n string) bool { return set[n] }, g.Successors, opts...)
}
