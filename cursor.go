package gds

// cursorState models the state machine of spec.md section 4.D:
// uninitialised -> positioned_before_first -> on_page_k -> exhausted
// -> closed. Grounded on the teacher's cursor.go state machine
// (cursorUninitialized / cursorPointing / cursorEOF / cursorInvalid).
type cursorState uint8

const (
	cursorUninitialized cursorState = iota
	cursorBeforeFirst
	cursorOnPage
	cursorExhausted
	cursorClosed
)

// Cursor is a forward-only, page-at-a-time iterator over a half-open
// range [start, end) of one huge array (spec.md section 3/4.D). Its
// zero value is not usable; obtain one via a huge array's NewCursor.
//
// After Next returns true, Page[Offset:Limit] are the valid elements
// of the current step, with global indices Base+Offset .. Base+Limit-1.
type Cursor[T any] struct {
	store *pagedStore[T]
	state cursorState
	start int64
	end   int64
	pos   int64 // next global index to deliver

	Page   []T
	Base   int64
	Offset int64
	Limit  int64
}

func newCursor[T any](s *pagedStore[T]) *Cursor[T] {
	return &Cursor[T]{store: s, state: cursorUninitialized}
}

// Init selects the full range [0, size).
func (c *Cursor[T]) Init() {
	c.InitRange(0, c.store.Size())
}

// InitRange selects [start, end) with 0 <= start <= end <= size.
func (c *Cursor[T]) InitRange(start, end int64) {
	size := c.store.Size()
	if start < 0 || end < start || end > size {
		raise(boundsError("Cursor.InitRange", start, size))
	}
	c.start = start
	c.end = end
	c.pos = start
	c.state = cursorBeforeFirst
	c.Page, c.Base, c.Offset, c.Limit = nil, 0, 0, 0
}

// Next advances to the next page. Returns false once the range is
// exhausted, at which point the cursor's fields become unspecified.
func (c *Cursor[T]) Next() bool {
	switch c.state {
	case cursorUninitialized:
		raise(lifecycleError("Cursor.Next", "Next called before Init"))
	case cursorClosed:
		raise(lifecycleError("Cursor.Next", "Next called on a closed cursor"))
	case cursorExhausted:
		return false
	}

	if c.pos >= c.end {
		c.state = cursorExhausted
		return false
	}

	page, base, offset := c.store.locateOwningPage(c.pos)
	limit := int64(len(page))
	if base+limit > c.end {
		limit = c.end - base
	}

	c.Page = page
	c.Base = base
	c.Offset = offset
	c.Limit = limit
	c.pos = base + limit
	c.state = cursorOnPage
	return true
}

// Close releases the cursor's borrow of the array's pages. The
// cursor must be re-initialised with Init/InitRange before reuse.
func (c *Cursor[T]) Close() {
	c.state = cursorClosed
	c.Page = nil
}

// locateOwningPage returns the page containing global index i, along
// with that page's base (global index of element 0) and i's in-page
// offset.
func (s *pagedStore[T]) locateOwningPage(i int64) (page []T, base int64, offset int64) {
	p, o := s.locate(i)
	return s.pages[p], i - o, o
}

// Typed cursor aliases, one per huge-array element kind (spec.md
// section 4.C).
type (
	ByteCursor   = Cursor[byte]
	IntCursor    = Cursor[int32]
	LongCursor   = Cursor[int64]
	DoubleCursor = Cursor[float64]
)
