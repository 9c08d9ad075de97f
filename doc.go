// Package gds is an in-memory graph-analytics runtime: huge paged
// arrays indexed by 64-bit identifiers, a cursor protocol for
// page-at-a-time traversal, a bump-allocated adjacency builder, and a
// page-reordering optimizer that improves cache locality after a
// build.
//
// Basic usage:
//
//	degrees := gds.NewIntArray(nodeCount)
//	offsets := gds.NewLongArray(nodeCount)
//
//	heap := gds.NewHeap[byte]()
//	alloc := heap.NewAllocator()
//	for node, neighbours := range adjacency { // neighbours sorted ascending
//	    buf := gds.NewByteBuffer()
//	    gds.EncodeDeltaVarint(neighbours, buf)
//	    var batch gds.Batch[byte]
//	    addr := alloc.Allocate(buf.Length(), &batch)
//	    copy(batch.Page, buf.Bytes())
//	    offsets.Set(int64(node), addr)
//	    degrees.Set(int64(node), int32(buf.Length()))
//	}
//	alloc.Close()
//
//	list, err := gds.Build(heap, degrees, offsets, true)
//	// list.Neighbors(node) decodes a run back into the original ids.
package gds
