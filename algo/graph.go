// Package algo holds the algorithm façades spec.md section 6 treats as
// an external collaborator ("run (algorithm façade)"): PageRank,
// single-level Louvain modularity folding, weighted degree centrality,
// and Jaccard similarity. Each consumes only the core's read path
// (gds.AdjacencyList.Neighbors, gds.DoubleArray/gds.LongArray) plus a
// config.AlgorithmConfig, never the bump allocator or reorder path.
package algo

import "github.com/graphrt/gds"

// Graph is the read-only view an algorithm runs over: a fixed node
// count and one or more adjacency lists (one per relationship type,
// per graphstore.Store). Neighbors merges across every list without
// deduplicating, so multi-relationship-type graphs keep parallel
// edges as the weighted algorithms expect.
type Graph struct {
	NodeCount int64
	lists     []*gds.AdjacencyList
}

// NewGraph returns a Graph over nodeCount nodes backed by one or more
// sealed adjacency lists.
func NewGraph(nodeCount int64, lists ...*gds.AdjacencyList) *Graph {
	return &Graph{NodeCount: nodeCount, lists: lists}
}

// Neighbors returns node's out-neighbours across every adjacency list
// this graph was built from.
func (g *Graph) Neighbors(node int64) []int64 {
	if len(g.lists) == 1 {
		return g.lists[0].Neighbors(node)
	}
	var out []int64
	for _, l := range g.lists {
		out = append(out, l.Neighbors(node)...)
	}
	return out
}
