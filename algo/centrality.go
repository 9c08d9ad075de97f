package algo

import (
	"github.com/graphrt/gds"
	"github.com/graphrt/gds/config"
)

// WeightedDegreeCentrality scores every node by the sum of weights
// over its out-neighbours. weights may be nil, in which case every
// neighbour contributes 1 (plain out-degree).
func WeightedDegreeCentrality(g *Graph, weights *gds.DoubleArray, cfg *config.AlgorithmConfig) *gds.DoubleArray {
	n := g.NodeCount
	out := gds.NewDoubleArray(n)
	forEachNode(n, cfg.Concurrency, func(node int64) {
		ns := g.Neighbors(node)
		var sum float64
		if weights == nil {
			sum = float64(len(ns))
		} else {
			for _, t := range ns {
				sum += weights.Get(t)
			}
		}
		out.Set(node, sum)
	})
	return out
}
