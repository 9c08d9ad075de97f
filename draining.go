package gds

import "sync/atomic"

// Batch is a (page, offset) pair handed to one caller of a draining
// iterator: page is a whole page taken exclusively by that caller,
// offset is the global index of its first element. Reusable across
// Next calls.
type Batch[T any] struct {
	Page   []T
	Offset int64
}

// DrainingIterator consumes a vector of pages exactly once each,
// safely from any number of concurrent callers (spec.md section
// 4.D). It takes ownership of the page vector; each page transitions
// present -> taken exactly once.
//
// Grounded on spill/bitmap.go's atomic free-slot allocation idea,
// adapted from a bitset scan to a per-page atomic claim-and-clear:
// each slot holds a pointer to its page until some caller swaps it to
// nil, which is both the claim and the clear.
type DrainingIterator[T any] struct {
	slots    []atomic.Pointer[[]T]
	pageSize int64
	next     atomic.Int64
	numPages int64
}

// NewDrainingIterator builds an iterator over pages, where pageSize
// is the global-index stride between consecutive pages (ordinarily
// PageSize, but callers may pass the adjacency heap's page length).
func NewDrainingIterator[T any](pages [][]T, pageSize int64) *DrainingIterator[T] {
	slots := make([]atomic.Pointer[[]T], len(pages))
	for i := range pages {
		p := pages[i]
		slots[i].Store(&p)
	}
	return &DrainingIterator[T]{slots: slots, pageSize: pageSize, numPages: int64(len(pages))}
}

// Next claims the next available page into batch and returns true, or
// returns false once every page has been claimed (by this or another
// caller). Safe for any number of concurrent callers.
func (d *DrainingIterator[T]) Next(batch *Batch[T]) bool {
	for {
		k := d.next.Add(1) - 1
		if k >= d.numPages {
			return false
		}
		claimed := d.slots[k].Swap(nil)
		if claimed == nil {
			// Slot already taken; retry with the next index.
			continue
		}
		batch.Page = *claimed
		batch.Offset = k * d.pageSize
		return true
	}
}

// NumPages returns the number of pages this iterator was built with.
func (d *DrainingIterator[T]) NumPages() int64 { return d.numPages }
