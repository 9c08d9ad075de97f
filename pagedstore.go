package gds

import (
	"fmt"
	"strings"
)

// maxFlatLen bounds ToFlat: the largest element count this
// implementation will copy into one contiguous Go slice. Set well
// below Go's own slice-length ceiling to keep the bound meaningful on
// 32-bit builds too, matching the spirit of the JVM single-array size
// limit the spec is modelled on.
const maxFlatLen = (1 << 31) - 16

// pagedStore is the generic single-page/paged storage core shared by
// every huge-array element kind (spec.md section 4.C, design note 9:
// a representation choice fixed at construction behind one type,
// rather than class inheritance). It knows nothing about numeric
// semantics (masking, wraparound, bitwise ops); those live in the
// per-kind facades (byte_array.go, int_array.go, ...).
type pagedStore[T any] struct {
	pages        [][]T
	single       bool
	size         int64
	bytesPerElem int64
	released     bool
}

func newPagedStore[T any](size int64, bytesPerElem int64) *pagedStore[T] {
	return newPagedStoreVariant[T](size, bytesPerElem, size > MaxSingleArrayLen)
}

// newPagedStoreVariant builds a store of the given size, forcing the
// paged representation when forcePaged is true (single-page when
// false and size fits). Both variants satisfy the same contract
// (spec.md section 4.C); exposed so tests can run the same suite
// against either representation regardless of size.
func newPagedStoreVariant[T any](size int64, bytesPerElem int64, forcePaged bool) *pagedStore[T] {
	if size < 0 {
		raise(boundsError("new", size, 0))
	}
	s := &pagedStore[T]{size: size, bytesPerElem: bytesPerElem}
	if !forcePaged {
		s.single = true
		s.pages = [][]T{make([]T, size)}
		return s
	}
	n := pagesFor(size)
	if n == 0 {
		n = 1
	}
	pages := make([][]T, n)
	for i := int64(0); i < n-1; i++ {
		pages[i] = make([]T, PageSize)
	}
	pages[n-1] = make([]T, tailLen(size))
	s.pages = pages
	return s
}

// newPagedStoreFromPages wraps externally supplied pages (e.g. an
// arena's slabs) as a pagedStore, instead of allocating Go-heap
// slices. The caller owns the pages' lifetime; Release does not free
// them, only marks the store dead.
func newPagedStoreFromPages[T any](pages [][]T, size int64, bytesPerElem int64) *pagedStore[T] {
	return &pagedStore[T]{
		pages:        pages,
		single:       len(pages) == 1 && size <= MaxSingleArrayLen,
		size:         size,
		bytesPerElem: bytesPerElem,
	}
}

func newPagedStoreFrom[T any](values []T, bytesPerElem int64) *pagedStore[T] {
	s := newPagedStore[T](int64(len(values)), bytesPerElem)
	remaining := values
	for _, page := range s.pages {
		n := copy(page, remaining)
		remaining = remaining[n:]
	}
	return s
}

func (s *pagedStore[T]) checkAlive(op string) {
	if s.released {
		raise(lifecycleError(op, "operation on a released array"))
	}
}

func (s *pagedStore[T]) checkIndex(op string, i int64) {
	if i < 0 || i >= s.size {
		raise(boundsError(op, i, s.size))
	}
}

// Size returns the fixed element count, O(1).
func (s *pagedStore[T]) Size() int64 { return s.size }

// SizeOf returns the current bytes held; 0 after Release.
func (s *pagedStore[T]) SizeOf() int64 {
	if s.released {
		return 0
	}
	if s.single {
		return instanceOverhead + SizeOfPrimitiveArray(s.size, s.bytesPerElem)
	}
	return SizeOfPaged(s.size, s.bytesPerElem)
}

func (s *pagedStore[T]) locate(i int64) (page int64, offset int64) {
	if s.single {
		return 0, i
	}
	return pageIndex(i), inPage(i)
}

// Get returns the element at i.
func (s *pagedStore[T]) Get(op string, i int64) T {
	s.checkAlive(op)
	s.checkIndex(op, i)
	p, o := s.locate(i)
	return s.pages[p][o]
}

// Set stores v at i.
func (s *pagedStore[T]) Set(op string, i int64, v T) {
	s.checkAlive(op)
	s.checkIndex(op, i)
	p, o := s.locate(i)
	s.pages[p][o] = v
}

// Fill stores v at every index.
func (s *pagedStore[T]) Fill(op string, v T) {
	s.checkAlive(op)
	for _, page := range s.pages {
		for i := range page {
			page[i] = v
		}
	}
}

// SetAll stores gen(i) at every index, sequentially, exactly once.
func (s *pagedStore[T]) SetAll(op string, gen func(int64) T) {
	s.checkAlive(op)
	var base int64
	for _, page := range s.pages {
		for i := range page {
			page[i] = gen(base + int64(i))
		}
		base += int64(len(page))
	}
}

// CopyTo copies min(length, s.Size(), dst.Size()) elements into dst
// and zero-pads the remainder of dst.
func (s *pagedStore[T]) CopyTo(op string, dst *pagedStore[T], length int64) {
	s.checkAlive(op)
	dst.checkAlive(op)
	if length > s.size {
		length = s.size
	}
	if length > dst.size {
		length = dst.size
	}
	var copied int64
	for copied < length {
		sp, so := s.locate(copied)
		dp, do := dst.locate(copied)
		srcPage := s.pages[sp][so:]
		dstPage := dst.pages[dp][do:]
		n := int64(len(srcPage))
		if int64(len(dstPage)) < n {
			n = int64(len(dstPage))
		}
		remaining := length - copied
		if n > remaining {
			n = remaining
		}
		copy(dstPage[:n], srcPage[:n])
		copied += n
	}
	// zero-pad the remainder of dst
	var zero T
	for i := copied; i < dst.size; i++ {
		p, o := dst.locate(i)
		dst.pages[p][o] = zero
	}
}

// CopyOf returns a new, independent store of newLen elements: the
// shared prefix copied, the remainder zero.
func (s *pagedStore[T]) CopyOf(op string, newLen int64) *pagedStore[T] {
	s.checkAlive(op)
	out := newPagedStore[T](newLen, s.bytesPerElem)
	s.CopyTo(op, out, newLen)
	return out
}

// ToFlat returns a fresh, owned contiguous copy of every element.
// Always a defensive copy (spec.md section 9 open question,
// resolved: never alias the underlying pages).
func (s *pagedStore[T]) ToFlat(op string) ([]T, error) {
	s.checkAlive(op)
	if s.size > maxFlatLen {
		return nil, capacityError(op, s.size, maxFlatLen)
	}
	out := make([]T, s.size)
	var base int64
	for _, page := range s.pages {
		copy(out[base:base+int64(len(page))], page)
		base += int64(len(page))
	}
	return out, nil
}

// CopyFromSlice copies min(len(src), sliceEnd-sliceStart) elements
// from src into this store starting at sliceStart, returning the
// number of elements copied.
func (s *pagedStore[T]) CopyFromSlice(op string, src []T, sliceStart, sliceEnd int64) int64 {
	s.checkAlive(op)
	if sliceStart < 0 {
		sliceStart = 0
	}
	if sliceEnd > s.size {
		sliceEnd = s.size
	}
	want := sliceEnd - sliceStart
	if want <= 0 {
		return 0
	}
	if int64(len(src)) < want {
		want = int64(len(src))
	}
	var n int64
	for n < want {
		i := sliceStart + n
		p, o := s.locate(i)
		page := s.pages[p][o:]
		m := int64(len(page))
		remaining := want - n
		if m > remaining {
			m = remaining
		}
		copy(page[:m], src[n:n+m])
		n += m
	}
	return n
}

// Release frees the pages and returns the bytes freed. Idempotent:
// returns 0 on the second and subsequent calls.
func (s *pagedStore[T]) Release(op string) int64 {
	if s.released {
		return 0
	}
	freed := s.SizeOf()
	s.pages = nil
	s.released = true
	return freed
}

// Pages returns a non-owning view of the page slice, for cursors, the
// draining iterator, and the bump allocator. Panics if released.
func (s *pagedStore[T]) Pages(op string) [][]T {
	s.checkAlive(op)
	return s.pages
}

// String renders "[e0, e1, ...]", matching spec.md's debug format.
// Not intended for production use on large arrays.
func (s *pagedStore[T]) String() string {
	if s.released || s.size == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	var i int64
	for _, page := range s.pages {
		for _, v := range page {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", v)
			i++
		}
	}
	b.WriteByte(']')
	return b.String()
}
