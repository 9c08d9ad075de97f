package gds

import "github.com/graphrt/gds/arena"

// NewByteArrayArena allocates a ByteArray of size bytes backed by one
// anonymous memory arena instead of per-page Go-heap slices, so its
// pages live outside the garbage collector's scan set. Returns the
// array and a close function the caller must invoke once the array
// is no longer needed (in place of Release, which only accounts
// bytes for Go-heap-backed arrays).
func NewByteArrayArena(size int64) (*ByteArray, func() error, error) {
	if size < 0 {
		raise(boundsError("NewByteArrayArena", size, 0))
	}
	pageCount := pagesFor(size)
	if pageCount == 0 {
		pageCount = 1
	}
	region, err := arena.NewAnonymous(pageCount*PageSize, true)
	if err != nil {
		return nil, nil, err
	}
	pages, err := region.Pages(PageSize)
	if err != nil {
		region.Close()
		return nil, nil, err
	}
	if size <= MaxSingleArrayLen {
		pages = [][]byte{pages[0][:size:size]}
	} else {
		tail := tailLen(size)
		pages[len(pages)-1] = pages[len(pages)-1][:tail:tail]
	}
	store := newPagedStoreFromPages[byte](pages, size, 1)
	return &ByteArray{store: store}, region.Close, nil
}
