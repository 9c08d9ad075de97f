package gds

// DoubleArray is a huge, fixed-size array of float64, paged once it
// exceeds MaxSingleArrayLen (spec.md section 4.C). Bit patterns are
// preserved exactly, including NaN payloads: Set/Get never normalise.
type DoubleArray struct {
	store *pagedStore[float64]
}

// NewDoubleArray allocates a zero-filled DoubleArray of size elements.
func NewDoubleArray(size int64) *DoubleArray {
	return &DoubleArray{store: newPagedStore[float64](size, 8)}
}

// NewDoubleArrayPaged forces the paged representation regardless of
// size, for exercising multi-page behaviour at small sizes in tests.
func NewDoubleArrayPaged(size int64) *DoubleArray {
	return &DoubleArray{store: newPagedStoreVariant[float64](size, 8, true)}
}

// DoubleArrayOf copies values into a new, owned DoubleArray.
func DoubleArrayOf(values ...float64) *DoubleArray {
	return &DoubleArray{store: newPagedStoreFrom[float64](values, 8)}
}

// Size returns the fixed element count.
func (a *DoubleArray) Size() int64 { return a.store.Size() }

// SizeOf returns the current estimated bytes held.
func (a *DoubleArray) SizeOf() int64 { return a.store.SizeOf() }

// Get returns the element at i.
func (a *DoubleArray) Get(i int64) float64 { return a.store.Get("DoubleArray.Get", i) }

// Set stores v at i.
func (a *DoubleArray) Set(i int64, v float64) { a.store.Set("DoubleArray.Set", i, v) }

// Fill stores v at every index.
func (a *DoubleArray) Fill(v float64) { a.store.Fill("DoubleArray.Fill", v) }

// SetAll stores gen(i) at every index.
func (a *DoubleArray) SetAll(gen func(int64) float64) { a.store.SetAll("DoubleArray.SetAll", gen) }

// AddTo adds delta to the element at i and returns the new value.
// Not atomic.
func (a *DoubleArray) AddTo(i int64, delta float64) float64 {
	const op = "DoubleArray.AddTo"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	a.store.pages[p][o] += delta
	return a.store.pages[p][o]
}

// GetAndAdd adds delta to the element at i and returns the prior
// value. Not atomic.
func (a *DoubleArray) GetAndAdd(i int64, delta float64) float64 {
	const op = "DoubleArray.GetAndAdd"
	a.store.checkAlive(op)
	a.store.checkIndex(op, i)
	p, o := a.store.locate(i)
	prior := a.store.pages[p][o]
	a.store.pages[p][o] = prior + delta
	return prior
}

// CopyTo copies min(length, Size(), dst.Size()) elements into dst.
func (a *DoubleArray) CopyTo(dst *DoubleArray, length int64) {
	a.store.CopyTo("DoubleArray.CopyTo", dst.store, length)
}

// CopyOf returns a new, independent DoubleArray of newLen elements.
func (a *DoubleArray) CopyOf(newLen int64) *DoubleArray {
	return &DoubleArray{store: a.store.CopyOf("DoubleArray.CopyOf", newLen)}
}

// ToFlat returns a fresh contiguous copy of every element.
func (a *DoubleArray) ToFlat() ([]float64, error) { return a.store.ToFlat("DoubleArray.ToFlat") }

// CopyFromSlice copies the leading elements of src into this array's
// indices [sliceStart, sliceEnd), clamped to Size() and to len(src),
// returning the count copied.
func (a *DoubleArray) CopyFromSlice(src []float64, sliceStart, sliceEnd int64) int64 {
	return a.store.CopyFromSlice("DoubleArray.CopyFromSlice", src, sliceStart, sliceEnd)
}

// Release frees the backing pages and returns the bytes freed.
func (a *DoubleArray) Release() int64 { return a.store.Release("DoubleArray.Release") }

// NewCursor returns a cursor over the full range of this array.
func (a *DoubleArray) NewCursor() *DoubleCursor {
	c := newCursor[float64](a.store)
	c.Init()
	return c
}

// NewCursorRange returns a cursor over [start, end) of this array.
func (a *DoubleArray) NewCursorRange(start, end int64) *DoubleCursor {
	c := newCursor[float64](a.store)
	c.InitRange(start, end)
	return c
}

func (a *DoubleArray) String() string { return a.store.String() }
