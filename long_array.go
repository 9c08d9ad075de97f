package gds

// LongArray is a huge, fixed-size array of int64, paged once it
// exceeds MaxSingleArrayLen (spec.md section 4.C). Grounded on the
// teacher's page.go dual accessor style, generalized from its checked
// vs raw page access to this type's Get/Set pair.
type LongArray struct {
	store *pagedStore[int64]
}

// NewLongArray allocates a zero-filled LongArray of size elements.
func NewLongArray(size int64) *LongArray {
	return &LongArray{store: newPagedStore[int64](size, 8)}
}

// NewLongArrayPaged forces the paged representation regardless of
// size, so tests can exercise multi-page behaviour at small sizes.
func NewLongArrayPaged(size int64) *LongArray {
	return &LongArray{store: newPagedStoreVariant[int64](size, 8, true)}
}

// LongArrayOf copies values into a new, owned LongArray.
func LongArrayOf(values ...int64) *LongArray {
	return &LongArray{store: newPagedStoreFrom[int64](values, 8)}
}

// Size returns the fixed element count.
func (a *LongArray) Size() int64 { return a.store.Size() }

// SizeOf returns the current estimated bytes held.
func (a *LongArray) SizeOf() int64 { return a.store.SizeOf() }

// Get returns the element at i.
func (a *LongArray) Get(i int64) int64 { return a.store.Get("LongArray.Get", i) }

// Set stores v at i.
func (a *LongArray) Set(i int64, v int64) { a.store.Set("LongArray.Set", i, v) }

// Fill stores v at every index.
func (a *LongArray) Fill(v int64) { a.store.Fill("LongArray.Fill", v) }

// SetAll stores gen(i) at every index.
func (a *LongArray) SetAll(gen func(int64) int64) { a.store.SetAll("LongArray.SetAll", gen) }

// AddTo adds delta to the element at i and returns the new value.
// Not atomic; for a concurrency-safe accumulator use AtomicLongArray.
func (a *LongArray) AddTo(i int64, delta int64) int64 {
	const op = "LongArray.AddTo"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] += delta
	return a.store.pages[p][o]
}

// GetAndAdd adds delta to the element at i and returns the prior
// value. Single-writer, not atomic; for a concurrency-safe accumulator
// use AtomicLongArray.
func (a *LongArray) GetAndAdd(i int64, delta int64) int64 {
	const op = "LongArray.GetAndAdd"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	prior := a.store.pages[p][o]
	a.store.pages[p][o] = prior + delta
	return prior
}

// Or sets the element at i to its bitwise OR with mask.
func (a *LongArray) Or(i int64, mask int64) {
	const op = "LongArray.Or"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] |= mask
}

// And sets the element at i to its bitwise AND with mask.
func (a *LongArray) And(i int64, mask int64) {
	const op = "LongArray.And"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] &= mask
}

// BinarySearch returns the index of the first element >= target in
// [0, size), assuming the array is sorted ascending, or size if no
// such element exists. Falls back to a linear scan below 64 elements
// (spec.md section 4.C edge case: small arrays favour a branch-light
// scan over a binary search's mispredicted jumps).
func (a *LongArray) BinarySearch(target int64) int64 {
	n := a.store.Size()
	if n < 64 {
		for i := int64(0); i < n; i++ {
			if a.Get(i) >= target {
				return i
			}
		}
		return n
	}
	lo, hi := int64(0), n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if a.Get(mid) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// CopyTo copies min(length, Size(), dst.Size()) elements into dst.
func (a *LongArray) CopyTo(dst *LongArray, length int64) {
	a.store.CopyTo("LongArray.CopyTo", dst.store, length)
}

// CopyOf returns a new, independent LongArray of newLen elements.
func (a *LongArray) CopyOf(newLen int64) *LongArray {
	return &LongArray{store: a.store.CopyOf("LongArray.CopyOf", newLen)}
}

// ToFlat returns a fresh contiguous copy of every element.
func (a *LongArray) ToFlat() ([]int64, error) { return a.store.ToFlat("LongArray.ToFlat") }

// CopyFromSlice copies the leading elements of src into this array's
// indices [sliceStart, sliceEnd), clamped to Size() and to len(src),
// returning the count copied.
func (a *LongArray) CopyFromSlice(src []int64, sliceStart, sliceEnd int64) int64 {
	return a.store.CopyFromSlice("LongArray.CopyFromSlice", src, sliceStart, sliceEnd)
}

// Release frees the backing pages and returns the bytes freed.
func (a *LongArray) Release() int64 { return a.store.Release("LongArray.Release") }

// NewCursor returns a cursor over the full range of this array.
func (a *LongArray) NewCursor() *LongCursor {
	c := newCursor[int64](a.store)
	c.Init()
	return c
}

// NewCursorRange returns a cursor over [start, end) of this array.
func (a *LongArray) NewCursorRange(start, end int64) *LongCursor {
	c := newCursor[int64](a.store)
	c.InitRange(start, end)
	return c
}

func (a *LongArray) String() string { return a.store.String() }
