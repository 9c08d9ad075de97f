package graphstore

import (
	"testing"

	"github.com/graphrt/gds"
	"github.com/graphrt/gds/projection"
)

func buildSingleNodeList(t *testing.T, degree int32) *gds.AdjacencyList {
	t.Helper()
	heap := gds.NewHeap[byte]()
	degrees := gds.NewIntArray(1)
	offsets := gds.NewLongArray(1)
	if degree > 0 {
		alloc := heap.NewAllocator()
		var b gds.Batch[byte]
		addr := alloc.Allocate(int64(degree), &b)
		alloc.Close()
		degrees.Set(0, degree)
		offsets.Set(0, addr)
	}
	list, err := gds.Build(heap, degrees, offsets, false)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return list
}

func TestNewStoreStartsEmpty(t *testing.T) {
	s := New(5, projection.NewRegistry())
	if s.NodeCount != 5 {
		t.Errorf("NodeCount = %d, want 5", s.NodeCount)
	}
	if len(s.RelationshipTypes()) != 0 {
		t.Error("a new store should have no relationship types")
	}
	if len(s.PropertyNames()) != 0 {
		t.Error("a new store should have no properties")
	}
}

func TestSetAndGetAdjacency(t *testing.T) {
	registry := projection.NewRegistry()
	s := New(1, registry)
	rt := registry.Type("FOLLOWS")
	list := buildSingleNodeList(t, 4)
	s.SetAdjacency(rt, list)

	if s.Adjacency(rt) != list {
		t.Error("Adjacency should return the list just set")
	}
	if s.Degree(rt, 0) != 4 {
		t.Errorf("Degree = %d, want 4", s.Degree(rt, 0))
	}
	other := registry.Type("BLOCKS")
	if s.Degree(other, 0) != 0 {
		t.Error("Degree for an unset relationship type should be 0")
	}
}

func TestNodePropertyLazyAllocatesOnce(t *testing.T) {
	s := New(3, projection.NewRegistry())
	p1 := s.NodeProperty("pagerank")
	p2 := s.NodeProperty("pagerank")
	if p1 != p2 {
		t.Error("NodeProperty should return the same array for the same name")
	}
	p1.Set(1, 0.5)
	if s.NodeProperty("pagerank").Get(1) != 0.5 {
		t.Error("writes through one handle should be visible through another")
	}
}

func TestNodeLabelRoundTrips(t *testing.T) {
	registry := projection.NewRegistry()
	s := New(2, registry)
	if _, ok := s.NodeLabel(0); ok {
		t.Error("node 0 should start with no label")
	}
	label := registry.Label("Person")
	s.SetNodeLabel(0, label)
	got, ok := s.NodeLabel(0)
	if !ok || got != label {
		t.Errorf("NodeLabel(0) = %v, %v, want %v, true", got, ok, label)
	}
}
