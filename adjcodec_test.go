package gds

import "testing"

func TestEncodeDecodeDeltaVarintRoundTrips(t *testing.T) {
	ids := []int64{3, 7, 7, 19, 1000000, 1000001}
	buf := &ByteBuffer{}
	EncodeDeltaVarint(ids, buf)
	got := DecodeDeltaVarint(buf.Bytes())
	if len(got) != len(ids) {
		t.Fatalf("decoded %d ids, want %d", len(got), len(ids))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestEncodeDecodeDeltaVarintEmpty(t *testing.T) {
	got := DecodeDeltaVarint(nil)
	if len(got) != 0 {
		t.Errorf("decoding empty data should yield no ids, got %v", got)
	}
}

func TestAdjacencyListNeighborsDecodesRun(t *testing.T) {
	heap := NewHeap[byte]()
	alloc := heap.NewAllocator()

	ids := []int64{10, 20, 20, 5}
	buf := &ByteBuffer{}
	EncodeDeltaVarint(ids, buf)

	var b Batch[byte]
	addr := alloc.Allocate(buf.Length(), &b)
	copy(b.Page, buf.Bytes())
	alloc.Close()

	degrees := NewIntArray(1)
	degrees.Set(0, int32(buf.Length()))
	offsets := NewLongArray(1)
	offsets.Set(0, addr)

	list, err := Build(heap, degrees, offsets, false)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	got := list.Neighbors(0)
	if len(got) != len(ids) {
		t.Fatalf("Neighbors returned %d ids, want %d", len(got), len(ids))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestAdjacencyListNeighborsZeroDegree(t *testing.T) {
	heap := NewHeap[byte]()
	list, err := Build(heap, NewIntArray(1), NewLongArray(1), false)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if got := list.Neighbors(0); got != nil {
		t.Errorf("Neighbors on zero-degree node = %v, want nil", got)
	}
}
