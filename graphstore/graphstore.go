// Package graphstore assembles the core's pieces into one graph per
// spec.md section 2's data flow: an adjacency list per relationship
// type, node property arrays, and a projection.Registry tying label
// and type strings to the dense ids everything else is keyed by.
package graphstore

import (
	"github.com/graphrt/gds"
	"github.com/graphrt/gds/projection"
)

// Store is one loaded graph projection: a fixed node count, one
// adjacency list per relationship type, and named double-valued node
// properties (PageRank scores, centrality, anything an algorithm
// writes back).
type Store struct {
	NodeCount int64
	Registry  *projection.Registry

	adjacency map[projection.RelationshipType]*gds.AdjacencyList
	nodeProps map[string]*gds.DoubleArray
	nodeLabel map[int64]projection.NodeLabel
}

// New returns an empty Store over nodeCount nodes.
func New(nodeCount int64, registry *projection.Registry) *Store {
	return &Store{
		NodeCount: nodeCount,
		Registry:  registry,
		adjacency: make(map[projection.RelationshipType]*gds.AdjacencyList),
		nodeProps: make(map[string]*gds.DoubleArray),
		nodeLabel: make(map[int64]projection.NodeLabel),
	}
}

// SetAdjacency attaches a sealed adjacency list for relationship type
// rt. Replaces any list previously attached for the same type.
func (s *Store) SetAdjacency(rt projection.RelationshipType, list *gds.AdjacencyList) {
	s.adjacency[rt] = list
}

// Adjacency returns the adjacency list for relationship type rt, or
// nil if none was set.
func (s *Store) Adjacency(rt projection.RelationshipType) *gds.AdjacencyList {
	return s.adjacency[rt]
}

// RelationshipTypes returns every relationship type with an attached
// adjacency list, in no particular order.
func (s *Store) RelationshipTypes() []projection.RelationshipType {
	out := make([]projection.RelationshipType, 0, len(s.adjacency))
	for rt := range s.adjacency {
		out = append(out, rt)
	}
	return out
}

// NodeProperty returns the named double-valued property array,
// allocating a zero-filled one of size NodeCount the first time name
// is requested.
func (s *Store) NodeProperty(name string) *gds.DoubleArray {
	if p, ok := s.nodeProps[name]; ok {
		return p
	}
	p := gds.NewDoubleArray(s.NodeCount)
	s.nodeProps[name] = p
	return p
}

// PropertyNames returns the names of every node property array
// created so far, in no particular order.
func (s *Store) PropertyNames() []string {
	out := make([]string, 0, len(s.nodeProps))
	for name := range s.nodeProps {
		out = append(out, name)
	}
	return out
}

// SetNodeLabel records node's label.
func (s *Store) SetNodeLabel(node int64, label projection.NodeLabel) {
	s.nodeLabel[node] = label
}

// NodeLabel returns node's label, or (0, false) if none was recorded.
func (s *Store) NodeLabel(node int64) (projection.NodeLabel, bool) {
	l, ok := s.nodeLabel[node]
	return l, ok
}

// Degree returns the byte length of node's encoded adjacency run in
// relationship type rt's list (its AdjacencyList.Degrees entry, not a
// neighbour count), or 0 if rt has no adjacency list attached.
func (s *Store) Degree(rt projection.RelationshipType, node int64) int32 {
	list := s.adjacency[rt]
	if list == nil {
		return 0
	}
	return list.Degrees.Get(node)
}
