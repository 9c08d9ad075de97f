package gds

// AdjacencyList is the sealed result of a bump-allocated build
// (spec.md section 4.F): one byte heap holding every node's
// delta-encoded neighbour run, addressed by offsets/degrees side
// tables. Immutable once returned by Build.
type AdjacencyList struct {
	pages   [][]byte
	Offsets *LongArray
	Degrees *IntArray
}

// Pages returns a read-only view of the heap's pages, for cursors and
// the draining iterator built on top of this list.
func (a *AdjacencyList) Pages() [][]byte { return a.pages }

// PageShift is the page-index/in-page-offset split every address in
// Offsets uses.
func (a *AdjacencyList) PageShift() uint { return DefaultPageShift }

// Slice returns the bytes of node's adjacency run: the sub-slice of
// its owning page starting at its in-page offset, degrees[node] bytes
// long. Panics if node has no run (degree 0): callers must check
// Degrees first.
func (a *AdjacencyList) Slice(node int64) []byte {
	const op = "AdjacencyList.Slice"
	degree := a.Degrees.Get(node)
	if degree <= 0 {
		raise(invariantError(op, "node has no adjacency run"))
	}
	addr := a.Offsets.Get(node)
	page := a.pages[addrPageIndex(addr, DefaultPageShift)]
	off := addrInPage(addr, DefaultPageShift)
	return page[off : off+int64(degree)]
}

// Neighbors decodes node's adjacency run into neighbour node ids.
// Returns nil for a zero-degree node rather than panicking, since
// algorithms iterate neighbours of every node regardless of degree.
func (a *AdjacencyList) Neighbors(node int64) []int64 {
	if a.Degrees.Get(node) <= 0 {
		return nil
	}
	return DecodeDeltaVarint(a.Slice(node))
}

// Build seals heap into an AdjacencyList. degrees and offsets become
// the list's side tables; when doReorder is true (the caller has
// already ANDed the allow_reordering argument with the
// USE_REORDERED_ADJACENCY_LIST feature toggle per spec.md section 6)
// and the heap holds at least one page, the page-reordering optimizer
// runs first, mutating offsets in place.
func Build(heap *Heap[byte], degrees *IntArray, offsets *LongArray, doReorder bool) (*AdjacencyList, error) {
	pages := heap.rawPages()
	if doReorder && len(pages) > 0 {
		Reorder(pages, offsets, degrees)
	}
	return &AdjacencyList{pages: pages, Offsets: offsets, Degrees: degrees}, nil
}
