package gds

// ObjectArray is a huge, fixed-size array of reference type T, paged
// once it exceeds MaxSingleArrayLen (spec.md section 4.C). SizeOf
// accounts only for the backing reference slots, not for whatever T
// values they point to — callers that need that add it themselves.
type ObjectArray[T any] struct {
	store *pagedStore[T]
}

// NewObjectArray allocates a zero-valued ObjectArray of size elements.
func NewObjectArray[T any](size int64) *ObjectArray[T] {
	return &ObjectArray[T]{store: newPagedStore[T](size, referenceSizeBytes)}
}

// NewObjectArrayPaged forces the paged representation regardless of
// size, for exercising multi-page behaviour at small sizes in tests.
func NewObjectArrayPaged[T any](size int64) *ObjectArray[T] {
	return &ObjectArray[T]{store: newPagedStoreVariant[T](size, referenceSizeBytes, true)}
}

// ObjectArrayOf copies values into a new, owned ObjectArray.
func ObjectArrayOf[T any](values ...T) *ObjectArray[T] {
	return &ObjectArray[T]{store: newPagedStoreFrom[T](values, referenceSizeBytes)}
}

// Size returns the fixed element count.
func (a *ObjectArray[T]) Size() int64 { return a.store.Size() }

// SizeOf returns the current estimated bytes held by the reference
// slots themselves.
func (a *ObjectArray[T]) SizeOf() int64 { return a.store.SizeOf() }

// Get returns the element at i.
func (a *ObjectArray[T]) Get(i int64) T { return a.store.Get("ObjectArray.Get", i) }

// Set stores v at i.
func (a *ObjectArray[T]) Set(i int64, v T) { a.store.Set("ObjectArray.Set", i, v) }

// Fill stores v at every index.
func (a *ObjectArray[T]) Fill(v T) { a.store.Fill("ObjectArray.Fill", v) }

// SetAll stores gen(i) at every index.
func (a *ObjectArray[T]) SetAll(gen func(int64) T) { a.store.SetAll("ObjectArray.SetAll", gen) }

// CopyTo copies min(length, Size(), dst.Size()) elements into dst.
func (a *ObjectArray[T]) CopyTo(dst *ObjectArray[T], length int64) {
	a.store.CopyTo("ObjectArray.CopyTo", dst.store, length)
}

// CopyOf returns a new, independent ObjectArray of newLen elements.
func (a *ObjectArray[T]) CopyOf(newLen int64) *ObjectArray[T] {
	return &ObjectArray[T]{store: a.store.CopyOf("ObjectArray.CopyOf", newLen)}
}

// ToFlat returns a fresh contiguous copy of every element.
func (a *ObjectArray[T]) ToFlat() ([]T, error) { return a.store.ToFlat("ObjectArray.ToFlat") }

// CopyFromSlice copies the leading elements of src into this array's
// indices [sliceStart, sliceEnd), clamped to Size() and to len(src),
// returning the count copied.
func (a *ObjectArray[T]) CopyFromSlice(src []T, sliceStart, sliceEnd int64) int64 {
	return a.store.CopyFromSlice("ObjectArray.CopyFromSlice", src, sliceStart, sliceEnd)
}

// Release frees the backing pages and returns the bytes freed.
func (a *ObjectArray[T]) Release() int64 { return a.store.Release("ObjectArray.Release") }

// NewCursor returns a cursor over the full range of this array.
func (a *ObjectArray[T]) NewCursor() *Cursor[T] {
	c := newCursor[T](a.store)
	c.Init()
	return c
}

// NewCursorRange returns a cursor over [start, end) of this array.
func (a *ObjectArray[T]) NewCursorRange(start, end int64) *Cursor[T] {
	c := newCursor[T](a.store)
	c.InitRange(start, end)
	return c
}

func (a *ObjectArray[T]) String() string { return a.store.String() }
