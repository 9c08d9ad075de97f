package gds

import "sync/atomic"

// AtomicLongArray is a huge array of int64 with a genuinely atomic
// AddTo/CompareAndSwap, for concurrent accumulation (e.g. degree
// counting during adjacency-list construction). Single-page only: a
// page-reorder swap would otherwise invalidate an in-flight atomic
// pointer (open question, resolved — see DESIGN.md).
type AtomicLongArray struct {
	words []atomic.Int64
	size  int64
}

// NewAtomicLongArray allocates a zero-filled AtomicLongArray. size
// must not exceed MaxSingleArrayLen.
func NewAtomicLongArray(size int64) *AtomicLongArray {
	if size < 0 {
		raise(boundsError("AtomicLongArray.New", size, 0))
	}
	if size > MaxSingleArrayLen {
		raise(invariantError("AtomicLongArray.New", "size exceeds the single-page atomic limit"))
	}
	return &AtomicLongArray{words: make([]atomic.Int64, size), size: size}
}

// Size returns the fixed element count.
func (a *AtomicLongArray) Size() int64 { return a.size }

// SizeOf returns the estimated bytes held.
func (a *AtomicLongArray) SizeOf() int64 {
	return instanceOverhead + SizeOfPrimitiveArray(a.size, 8)
}

func (a *AtomicLongArray) checkIndex(op string, i int64) {
	if i < 0 || i >= a.size {
		raise(boundsError(op, i, a.size))
	}
}

// Get returns the element at i.
func (a *AtomicLongArray) Get(i int64) int64 {
	a.checkIndex("AtomicLongArray.Get", i)
	return a.words[i].Load()
}

// Set stores v at i.
func (a *AtomicLongArray) Set(i int64, v int64) {
	a.checkIndex("AtomicLongArray.Set", i)
	a.words[i].Store(v)
}

// AddTo atomically adds delta to the element at i and returns the new
// value.
func (a *AtomicLongArray) AddTo(i int64, delta int64) int64 {
	a.checkIndex("AtomicLongArray.AddTo", i)
	return a.words[i].Add(delta)
}

// GetAndAdd atomically adds delta to the element at i and returns the
// value as it was before the add.
func (a *AtomicLongArray) GetAndAdd(i int64, delta int64) int64 {
	a.checkIndex("AtomicLongArray.GetAndAdd", i)
	return a.words[i].Add(delta) - delta
}

// CompareAndSwap atomically sets the element at i to new if it is
// currently old, reporting whether the swap happened.
func (a *AtomicLongArray) CompareAndSwap(i int64, old, new int64) bool {
	a.checkIndex("AtomicLongArray.CompareAndSwap", i)
	return a.words[i].CompareAndSwap(old, new)
}

// Fill stores v at every index, non-atomically across indices (each
// individual store is still atomic).
func (a *AtomicLongArray) Fill(v int64) {
	for i := range a.words {
		a.words[i].Store(v)
	}
}

// ToFlat returns a fresh contiguous snapshot of every element. Not a
// consistent point-in-time snapshot under concurrent writers.
func (a *AtomicLongArray) ToFlat() []int64 {
	out := make([]int64, a.size)
	for i := range a.words {
		out[i] = a.words[i].Load()
	}
	return out
}
