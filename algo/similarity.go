package algo

import (
	"sort"

	"github.com/graphrt/gds/config"
)

// JaccardSimilarity returns |N(a) ∩ N(b)| / |N(a) ∪ N(b)| over g's
// out-neighbour sets, treating parallel edges as a single neighbour.
// Returns 0 when both neighbour sets are empty.
func JaccardSimilarity(g *Graph, a, b int64) float64 {
	setA := neighborSet(g, a)
	setB := neighborSet(g, b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}
	inter := 0
	for x := range setA {
		if _, ok := setB[x]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func neighborSet(g *Graph, node int64) map[int64]struct{} {
	ns := g.Neighbors(node)
	set := make(map[int64]struct{}, len(ns))
	for _, x := range ns {
		set[x] = struct{}{}
	}
	return set
}

// Similarity pairs a node with its similarity score to some query
// node, as returned by TopKSimilar.
type Similarity struct {
	Node  int64
	Score float64
}

// TopKSimilar scores node's Jaccard similarity against every other
// node in g (across cfg.Concurrency workers) and returns the k
// highest-scoring, descending, excluding zero scores. k <= 0 means
// "return every non-zero match".
func TopKSimilar(g *Graph, cfg *config.AlgorithmConfig, node int64, k int) []Similarity {
	n := g.NodeCount
	scores := make([]float64, n)
	forEachNode(n, cfg.Concurrency, func(other int64) {
		if other == node {
			return
		}
		scores[other] = JaccardSimilarity(g, node, other)
	})

	out := make([]Similarity, 0, n)
	for i := int64(0); i < n; i++ {
		if i == node || scores[i] == 0 {
			continue
		}
		out = append(out, Similarity{Node: i, Score: scores[i]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
