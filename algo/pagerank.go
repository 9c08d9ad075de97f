package algo

import (
	"github.com/graphrt/gds"
	"github.com/graphrt/gds/config"
)

// PageRank runs the classic power-iteration PageRank over g, using
// cfg.DampingFactor, stopping after cfg.MaxIterations or once the
// total absolute score change drops below cfg.ConvergenceThresh.
// Dangling nodes (no out-neighbours) redistribute their mass evenly
// across every node, the standard fix for rank sinks.
//
// The push step that distributes one node's score to its neighbours
// writes into every target's accumulator, so it runs single-threaded,
// as do the score updates and the convergence check; only neighbour
// decoding, done once before the first iteration, runs across
// cfg.Concurrency workers.
func PageRank(g *Graph, cfg *config.AlgorithmConfig) *gds.DoubleArray {
	n := g.NodeCount
	scores := gds.NewDoubleArray(n)
	if n == 0 {
		return scores
	}

	neighbors := make([][]int64, n)
	forEachNode(n, cfg.Concurrency, func(node int64) {
		neighbors[node] = g.Neighbors(node)
	})

	init := 1.0 / float64(n)
	for i := int64(0); i < n; i++ {
		scores.Set(i, init)
	}

	next := make([]float64, n)
	teleport := (1 - cfg.DampingFactor) / float64(n)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		var danglingMass float64
		for i := int64(0); i < n; i++ {
			if len(neighbors[i]) == 0 {
				danglingMass += scores.Get(i)
			}
		}
		danglingShare := cfg.DampingFactor * danglingMass / float64(n)

		for i := int64(0); i < n; i++ {
			next[i] = teleport + danglingShare
		}
		for i := int64(0); i < n; i++ {
			ns := neighbors[i]
			if len(ns) == 0 {
				continue
			}
			share := cfg.DampingFactor * scores.Get(i) / float64(len(ns))
			for _, t := range ns {
				next[t] += share
			}
		}

		var diff float64
		for i := int64(0); i < n; i++ {
			d := next[i] - scores.Get(i)
			if d < 0 {
				d = -d
			}
			diff += d
			scores.Set(i, next[i])
		}
		if diff < cfg.ConvergenceThresh {
			break
		}
	}
	return scores
}
