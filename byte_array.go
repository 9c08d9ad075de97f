package gds

// ByteArray is a huge, fixed-size array of byte, paged once it
// exceeds MaxSingleArrayLen (spec.md section 4.C). The adjacency heap
// in bump.go keeps its own raw [][]byte pages and does not use it.
type ByteArray struct {
	store *pagedStore[byte]
}

// NewByteArray allocates a zero-filled ByteArray of size elements.
func NewByteArray(size int64) *ByteArray {
	return &ByteArray{store: newPagedStore[byte](size, 1)}
}

// NewByteArrayPaged forces the paged representation regardless of
// size, for exercising multi-page behaviour at small sizes in tests.
func NewByteArrayPaged(size int64) *ByteArray {
	return &ByteArray{store: newPagedStoreVariant[byte](size, 1, true)}
}

// ByteArrayOf copies values into a new, owned ByteArray.
func ByteArrayOf(values ...byte) *ByteArray {
	return &ByteArray{store: newPagedStoreFrom[byte](values, 1)}
}

// Size returns the fixed element count.
func (a *ByteArray) Size() int64 { return a.store.Size() }

// SizeOf returns the current estimated bytes held.
func (a *ByteArray) SizeOf() int64 { return a.store.SizeOf() }

// Get returns the element at i.
func (a *ByteArray) Get(i int64) byte { return a.store.Get("ByteArray.Get", i) }

// Set stores v at i.
func (a *ByteArray) Set(i int64, v byte) { a.store.Set("ByteArray.Set", i, v) }

// Fill stores v at every index.
func (a *ByteArray) Fill(v byte) { a.store.Fill("ByteArray.Fill", v) }

// SetAll stores gen(i) at every index.
func (a *ByteArray) SetAll(gen func(int64) byte) { a.store.SetAll("ByteArray.SetAll", gen) }

// AddTo adds delta to the element at i and returns the new value.
// byte is Go's uint8, so the result is masked to 8 bits by the type
// itself; no separate masking step is needed. Not atomic.
func (a *ByteArray) AddTo(i int64, delta byte) byte {
	const op = "ByteArray.AddTo"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] += delta
	return a.store.pages[p][o]
}

// GetAndAdd adds delta to the element at i and returns the prior
// value. Single-writer, not atomic; see atomic_long_array.go's AtomicLongArray
// for a concurrency-safe accumulator.
func (a *ByteArray) GetAndAdd(i int64, delta byte) byte {
	const op = "ByteArray.GetAndAdd"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	prior := a.store.pages[p][o]
	a.store.pages[p][o] = prior + delta
	return prior
}

// Or sets the element at i to its bitwise OR with mask.
func (a *ByteArray) Or(i int64, mask byte) {
	const op = "ByteArray.Or"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] |= mask
}

// And sets the element at i to its bitwise AND with mask.
func (a *ByteArray) And(i int64, mask byte) {
	const op = "ByteArray.And"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] &= mask
}

// CopyTo copies min(length, Size(), dst.Size()) elements into dst.
func (a *ByteArray) CopyTo(dst *ByteArray, length int64) {
	a.store.CopyTo("ByteArray.CopyTo", dst.store, length)
}

// CopyOf returns a new, independent ByteArray of newLen elements.
func (a *ByteArray) CopyOf(newLen int64) *ByteArray {
	return &ByteArray{store: a.store.CopyOf("ByteArray.CopyOf", newLen)}
}

// ToFlat returns a fresh contiguous copy of every element.
func (a *ByteArray) ToFlat() ([]byte, error) { return a.store.ToFlat("ByteArray.ToFlat") }

// CopyFromSlice copies the leading elements of src into this array's
// indices [sliceStart, sliceEnd), clamped to Size() and to len(src),
// returning the count copied.
func (a *ByteArray) CopyFromSlice(src []byte, sliceStart, sliceEnd int64) int64 {
	return a.store.CopyFromSlice("ByteArray.CopyFromSlice", src, sliceStart, sliceEnd)
}

// Release frees the backing pages and returns the bytes freed.
func (a *ByteArray) Release() int64 { return a.store.Release("ByteArray.Release") }

// NewCursor returns a cursor over the full range of this array.
func (a *ByteArray) NewCursor() *ByteCursor {
	c := newCursor[byte](a.store)
	c.Init()
	return c
}

// NewCursorRange returns a cursor over [start, end) of this array.
func (a *ByteArray) NewCursorRange(start, end int64) *ByteCursor {
	c := newCursor[byte](a.store)
	c.InitRange(start, end)
	return c
}

// Pages returns a non-owning view of the backing pages, for the bump
// allocator and the page-reordering optimizer.
func (a *ByteArray) Pages() [][]byte { return a.store.Pages("ByteArray.Pages") }

func (a *ByteArray) String() string { return a.store.String() }
