package gds

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocatorSinglePageContiguous(t *testing.T) {
	heap := NewHeap[byte]()
	alloc := heap.NewAllocator()
	defer alloc.Close()

	var b1, b2 Batch[byte]
	addr1 := alloc.Allocate(10, &b1)
	addr2 := alloc.Allocate(20, &b2)

	require.Equal(t, int64(0), addrPageIndex(addr1, DefaultPageShift))
	require.Equal(t, int64(0), addrInPage(addr1, DefaultPageShift))
	require.Equal(t, int64(0), addrPageIndex(addr2, DefaultPageShift))
	require.Equal(t, int64(10), addrInPage(addr2, DefaultPageShift))
}

func TestAllocatorStartsFreshPageWhenTailTooSmall(t *testing.T) {
	heap := NewHeap[byte]()
	alloc := heap.NewAllocator()
	defer alloc.Close()

	var b Batch[byte]
	alloc.Allocate(PageSize-5, &b)
	addr := alloc.Allocate(10, &b)
	require.Equal(t, int64(1), addrPageIndex(addr, DefaultPageShift), "allocation that doesn't fit the tail must start a new page")
	require.Equal(t, int64(0), addrInPage(addr, DefaultPageShift))
}

func TestAllocatorCloseRejectsFurtherAllocate(t *testing.T) {
	heap := NewHeap[byte]()
	alloc := heap.NewAllocator()
	alloc.Close()
	var b Batch[byte]
	require.Panics(t, func() { alloc.Allocate(1, &b) })
}

func TestPositionalAllocatorWriteAt(t *testing.T) {
	heap := NewHeap[byte]()
	alloc := heap.NewAllocator()
	var b Batch[byte]
	addr := alloc.Allocate(4, &b)
	alloc.Close()

	pos := heap.NewPositionalAllocator()
	pos.WriteAt(addr, []byte{1, 2, 3, 4})

	pages := heap.rawPages()
	off := addrInPage(addr, DefaultPageShift)
	require.Equal(t, []byte{1, 2, 3, 4}, pages[0][off:off+4])
}

func TestPositionalAllocatorWriteAtCrossingPageEndPanics(t *testing.T) {
	heap := NewHeap[byte]()
	alloc := heap.NewAllocator()
	var b Batch[byte]
	alloc.Allocate(PageSize, &b)
	alloc.Close()

	addr := makeAddr(0, PageSize-2, DefaultPageShift)
	pos := heap.NewPositionalAllocator()
	require.Panics(t, func() { pos.WriteAt(addr, []byte{1, 2, 3}) })
}

func TestHeapAcquirePageSynchronizesAcrossAllocators(t *testing.T) {
	heap := NewHeap[byte]()
	const allocators = 16
	addrs := make([]int64, allocators)
	var wg sync.WaitGroup
	wg.Add(allocators)
	for i := 0; i < allocators; i++ {
		i := i
		go func() {
			defer wg.Done()
			a := heap.NewAllocator()
			var b Batch[byte]
			addrs[i] = a.Allocate(PageSize, &b)
			a.Close()
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for _, addr := range addrs {
		p := addrPageIndex(addr, DefaultPageShift)
		require.False(t, seen[p], "page %d was handed to more than one allocator", p)
		seen[p] = true
	}
	require.Len(t, seen, allocators)
}
