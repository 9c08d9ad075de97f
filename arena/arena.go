// Package arena provides anonymous memory-mapped regions sized for
// huge-array page backing, as an alternative to ordinary Go-heap
// slices when a caller wants OS-paged, GC-invisible storage.
//
// Adapted from the project's original file-backed mmap wrapper: same
// struct shape and lifecycle (New/Close, Advise*), but the region is
// anonymous and fixed-size — there is no file, offset, or remap, since
// an adjacency build knows its page budget upfront (spec.md section
// 4.F seals a heap in one build() call).
package arena

// Arena is one anonymous memory mapping, sized in bytes at creation.
type Arena struct {
	data     []byte
	size     int64
	writable bool
}

// Data returns the mapped byte slice.
func (a *Arena) Data() []byte { return a.data }

// Size returns the mapping's size in bytes.
func (a *Arena) Size() int64 { return a.size }

// Writable reports whether the mapping was created read-write.
func (a *Arena) Writable() bool { return a.writable }

// Error represents an arena error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "arena: " + e.Op + ": " + e.Err.Error()
	}
	return "arena: " + e.Op
}

func (e *Error) Unwrap() error { return e.Err }

// Common errors.
var (
	ErrInvalidSize = &Error{Op: "invalid size"}
	ErrNotMapped   = &Error{Op: "not mapped"}
	ErrInvalidSlab = &Error{Op: "invalid slab size"}
)

// Pages slices data into n fixed-size pages of pageSize bytes each,
// for use as a huge array's backing page vector. size must be an
// exact multiple of pageSize.
func (a *Arena) Pages(pageSize int64) ([][]byte, error) {
	if pageSize <= 0 || a.size%pageSize != 0 {
		return nil, ErrInvalidSlab
	}
	n := a.size / pageSize
	pages := make([][]byte, n)
	for i := int64(0); i < n; i++ {
		pages[i] = a.data[i*pageSize : (i+1)*pageSize : (i+1)*pageSize]
	}
	return pages, nil
}
