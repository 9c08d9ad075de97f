package gds

// IntArray is a huge, fixed-size array of int32, paged once it
// exceeds MaxSingleArrayLen (spec.md section 4.C).
type IntArray struct {
	store *pagedStore[int32]
}

// NewIntArray allocates a zero-filled IntArray of size elements.
func NewIntArray(size int64) *IntArray {
	return &IntArray{store: newPagedStore[int32](size, 4)}
}

// NewIntArrayPaged forces the paged representation regardless of
// size, for exercising multi-page behaviour at small sizes in tests.
func NewIntArrayPaged(size int64) *IntArray {
	return &IntArray{store: newPagedStoreVariant[int32](size, 4, true)}
}

// IntArrayOf copies values into a new, owned IntArray.
func IntArrayOf(values ...int32) *IntArray {
	return &IntArray{store: newPagedStoreFrom[int32](values, 4)}
}

// Size returns the fixed element count.
func (a *IntArray) Size() int64 { return a.store.Size() }

// SizeOf returns the current estimated bytes held.
func (a *IntArray) SizeOf() int64 { return a.store.SizeOf() }

// Get returns the element at i.
func (a *IntArray) Get(i int64) int32 { return a.store.Get("IntArray.Get", i) }

// Set stores v at i.
func (a *IntArray) Set(i int64, v int32) { a.store.Set("IntArray.Set", i, v) }

// Fill stores v at every index.
func (a *IntArray) Fill(v int32) { a.store.Fill("IntArray.Fill", v) }

// SetAll stores gen(i) at every index.
func (a *IntArray) SetAll(gen func(int64) int32) { a.store.SetAll("IntArray.SetAll", gen) }

// AddTo adds delta to the element at i and returns the new value,
// wrapping on int32 overflow like any other Go int32 arithmetic.
// Not atomic.
func (a *IntArray) AddTo(i int64, delta int32) int32 {
	const op = "IntArray.AddTo"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] += delta
	return a.store.pages[p][o]
}

// GetAndAdd adds delta to the element at i and returns the prior
// value. Single-writer, not atomic; see AtomicLongArray for a
// concurrency-safe accumulator.
func (a *IntArray) GetAndAdd(i int64, delta int32) int32 {
	const op = "IntArray.GetAndAdd"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	prior := a.store.pages[p][o]
	a.store.pages[p][o] = prior + delta
	return prior
}

// Or sets the element at i to its bitwise OR with mask.
func (a *IntArray) Or(i int64, mask int32) {
	const op = "IntArray.Or"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] |= mask
}

// And sets the element at i to its bitwise AND with mask.
func (a *IntArray) And(i int64, mask int32) {
	const op = "IntArray.And"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] &= mask
}

// CopyTo copies min(length, Size(), dst.Size()) elements into dst.
func (a *IntArray) CopyTo(dst *IntArray, length int64) {
	a.store.CopyTo("IntArray.CopyTo", dst.store, length)
}

// CopyOf returns a new, independent IntArray of newLen elements.
func (a *IntArray) CopyOf(newLen int64) *IntArray {
	return &IntArray{store: a.store.CopyOf("IntArray.CopyOf", newLen)}
}

// ToFlat returns a fresh contiguous copy of every element.
func (a *IntArray) ToFlat() ([]int32, error) { return a.store.ToFlat("IntArray.ToFlat") }

// CopyFromSlice copies the leading elements of src into this array's
// indices [sliceStart, sliceEnd), clamped to Size() and to len(src),
// returning the count copied.
func (a *IntArray) CopyFromSlice(src []int32, sliceStart, sliceEnd int64) int64 {
	return a.store.CopyFromSlice("IntArray.CopyFromSlice", src, sliceStart, sliceEnd)
}

// Release frees the backing pages and returns the bytes freed.
func (a *IntArray) Release() int64 { return a.store.Release("IntArray.Release") }

// NewCursor returns a cursor over the full range of this array.
func (a *IntArray) NewCursor() *IntCursor {
	c := newCursor[int32](a.store)
	c.Init()
	return c
}

// NewCursorRange returns a cursor over [start, end) of this array.
func (a *IntArray) NewCursorRange(start, end int64) *IntCursor {
	c := newCursor[int32](a.store)
	c.InitRange(start, end)
	return c
}

func (a *IntArray) String() string { return a.store.String() }
