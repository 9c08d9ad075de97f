package gds

import "sync"

// Heap is the shared page pool behind one adjacency build (spec.md
// section 4.F): any number of Allocators draw fresh pages from it,
// synchronising only on the "grab a page" step, exactly as the
// teacher's mmap arena hands out fixed-size regions to callers.
type Heap[T any] struct {
	mu    sync.Mutex
	pages [][]T
}

// NewHeap returns an empty heap ready for allocators.
func NewHeap[T any]() *Heap[T] { return &Heap[T]{} }

func (h *Heap[T]) acquirePage() (idx int64, page []T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	idx = int64(len(h.pages))
	page = make([]T, PageSize)
	h.pages = append(h.pages, page)
	return idx, page
}

func (h *Heap[T]) pageAt(op string, idx int64) []T {
	h.mu.Lock()
	defer h.mu.Unlock()
	if idx < 0 || idx >= int64(len(h.pages)) {
		raise(boundsError(op, idx, int64(len(h.pages))))
	}
	return h.pages[idx]
}

// snapshotPages returns the current page vector. Callers must only
// use this once no allocator is still writing (build time).
func (h *Heap[T]) snapshotPages() [][]T {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([][]T, len(h.pages))
	copy(out, h.pages)
	return out
}

// rawPages returns the live page vector, not a copy. Valid to use
// only at build time, once every allocator for this heap is closed
// and no reader exists (spec.md section 5: reordering runs with no
// concurrent readers or writers).
func (h *Heap[T]) rawPages() [][]T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pages
}

// NewAllocator returns a fresh single-writer Allocator drawing pages
// from this heap. Safe to call concurrently with other NewAllocator
// calls and other allocators' Allocate calls.
func (h *Heap[T]) NewAllocator() *Allocator[T] {
	return &Allocator[T]{heap: h, pageIdx: -1}
}

// NewPositionalAllocator returns a PositionalAllocator able to write
// back into addresses this heap has already handed out.
func (h *Heap[T]) NewPositionalAllocator() *PositionalAllocator[T] {
	return &PositionalAllocator[T]{heap: h}
}

// Allocator hands out contiguous, single-page regions of a Heap to
// exactly one writer (spec.md section 4.F). Its zero value is not
// usable; obtain one via Heap.NewAllocator.
type Allocator[T any] struct {
	heap    *Heap[T]
	pageIdx int64
	page    []T
	offset  int64
	closed  bool
}

// Allocate reserves length elements, writes the claimed region into
// out, and returns the packed address (page_index<<PAGE_SHIFT |
// in_page_offset). If the current page lacks room, a fresh page is
// drawn from the heap and the old page's tail is left unused.
func (a *Allocator[T]) Allocate(length int64, out *Batch[T]) int64 {
	const op = "Allocator.Allocate"
	if a.closed {
		raise(lifecycleError(op, "Allocate called on a closed allocator"))
	}
	if length <= 0 || length > PageSize {
		raise(invariantError(op, "allocation length must be in (0, PageSize]"))
	}
	if a.page == nil || a.offset+length > int64(len(a.page)) {
		idx, page := a.heap.acquirePage()
		a.pageIdx = idx
		a.page = page
		a.offset = 0
	}
	off := a.offset
	out.Page = a.page[off : off+length]
	out.Offset = off
	a.offset += length
	return makeAddr(a.pageIdx, off, DefaultPageShift)
}

// Close marks this allocator done. Further Allocate calls panic.
func (a *Allocator[T]) Close() { a.closed = true }

// PositionalAllocator writes back into addresses a Heap has already
// handed out via some Allocator (spec.md section 4.F). Read-modify-
// write at an already-assigned address is single-writer per address
// range by construction of the caller's work assignment; the type
// itself performs no additional locking.
type PositionalAllocator[T any] struct {
	heap *Heap[T]
}

// WriteAt copies src into the heap at addr, which must have been
// returned by some Allocator.Allocate against the same heap. The
// write must not cross the owning page's end.
func (p *PositionalAllocator[T]) WriteAt(addr int64, src []T) {
	const op = "PositionalAllocator.WriteAt"
	pageIdx := addrPageIndex(addr, DefaultPageShift)
	inPage := addrInPage(addr, DefaultPageShift)
	page := p.heap.pageAt(op, pageIdx)
	if inPage < 0 || inPage+int64(len(src)) > int64(len(page)) {
		raise(boundsError(op, inPage+int64(len(src)), int64(len(page))))
	}
	copy(page[inPage:inPage+int64(len(src))], src)
}
