package algo

import (
	"github.com/graphrt/gds"
	"github.com/graphrt/gds/config"
)

// Louvain runs one level of Louvain-style modularity folding: every
// node starts as its own community, then repeatedly considers moving
// each node into the neighbouring community that yields the largest
// modularity gain, sweeping until a full pass makes no move or
// cfg.MaxIterations sweeps have run. This is the "single-level" fold
// named in spec.md's supplemented algorithm set — no coarsening into a
// new graph and no recursive second level.
func Louvain(g *Graph, cfg *config.AlgorithmConfig) *gds.LongArray {
	n := g.NodeCount
	community := gds.NewLongArray(n)
	for i := int64(0); i < n; i++ {
		community.Set(i, i)
	}
	if n == 0 {
		return community
	}

	neighbors := make([][]int64, n)
	degree := make([]float64, n)
	forEachNode(n, cfg.Concurrency, func(node int64) {
		ns := g.Neighbors(node)
		neighbors[node] = ns
		degree[node] = float64(len(ns))
	})

	var totalWeight float64
	for i := int64(0); i < n; i++ {
		totalWeight += degree[i]
	}
	if totalWeight == 0 {
		return community
	}

	communityWeight := make([]float64, n)
	for i := int64(0); i < n; i++ {
		communityWeight[i] = degree[i]
	}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		moved := false
		for node := int64(0); node < n; node++ {
			current := community.Get(node)
			weightToCommunity := make(map[int64]float64, len(neighbors[node]))
			for _, nb := range neighbors[node] {
				weightToCommunity[community.Get(nb)]++
			}
			communityWeight[current] -= degree[node]

			bestCommunity := current
			bestGain := weightToCommunity[current] - degree[node]*communityWeight[current]/totalWeight
			for c, w := range weightToCommunity {
				if c == current {
					continue
				}
				gain := w - degree[node]*communityWeight[c]/totalWeight
				if gain > bestGain {
					bestGain = gain
					bestCommunity = c
				}
			}
			communityWeight[bestCommunity] += degree[node]
			if bestCommunity != current {
				community.Set(node, bestCommunity)
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return community
}
