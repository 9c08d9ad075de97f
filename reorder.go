package gds

import "github.com/graphrt/gds/internal/bitset"

// pageOrdering is the result of reorder phase 1: the access pattern a
// node-id-order traversal of offsets actually exhibits (spec.md
// section 4.G).
type pageOrdering struct {
	distinctOrdering []int64 // first-seen page index, in visitation order
	reverseOrdering  []int64 // per visited page-run: its slot in distinctOrdering
	pageOffsets      []int64 // node-id boundaries of each run, length = len(reverseOrdering)+1
}

// detectOrdering walks offsets in node-id order and records the
// sequence of distinct pages a connected traversal touches.
func detectOrdering(offsets *LongArray, degrees *IntArray, numPages int64) *pageOrdering {
	n := offsets.Size()
	seen := bitset.New(uint32(numPages))
	reverseDistinct := make([]int64, numPages)
	po := &pageOrdering{}

	prevPage := int64(-1)
	cur := offsets.NewCursor()
	defer cur.Close()
	var node int64
	for cur.Next() {
		for k := cur.Offset; k < cur.Limit; k++ {
			if degrees.Get(node) > 0 {
				addr := cur.Page[k]
				pageIdx := addrPageIndex(addr, DefaultPageShift)
				if pageIdx != prevPage {
					if !seen.IsSet(uint32(pageIdx)) {
						seen.Mark(uint32(pageIdx))
						reverseDistinct[pageIdx] = int64(len(po.distinctOrdering))
						po.distinctOrdering = append(po.distinctOrdering, pageIdx)
					}
					po.reverseOrdering = append(po.reverseOrdering, reverseDistinct[pageIdx])
					po.pageOffsets = append(po.pageOffsets, node)
					prevPage = pageIdx
				}
			}
			node++
		}
	}
	po.pageOffsets = append(po.pageOffsets, n)
	return po
}

// fullPermutation extends a partial ordering of page indices (the
// pages a traversal actually touched) to a full permutation of
// [0, numPages): untouched pages keep their relative order, appended
// after every touched page's new slot.
func fullPermutation(distinctOrdering []int64, numPages int64) []int64 {
	used := bitset.New(uint32(numPages))
	for _, p := range distinctOrdering {
		used.Mark(uint32(p))
	}
	perm := make([]int64, numPages)
	copy(perm, distinctOrdering)
	k := int64(len(distinctOrdering))
	for p := int64(0); p < numPages; p++ {
		if !used.IsSet(uint32(p)) {
			perm[k] = p
			k++
		}
	}
	return perm
}

// reorderPages permutes pages in place so that pages[i] becomes the
// page originally at perm[i], using a cycle-following scheme: each
// page is moved at most once, and a slot's source is never touched
// again once that slot is filled (spec.md section 4.G phase 2).
func reorderPages[T any](pages [][]T, perm []int64) {
	n := int64(len(pages))
	swaps := make([]int64, n)
	for i := range swaps {
		swaps[i] = -1
	}
	for i := int64(0); i < n; i++ {
		if swaps[i] >= 0 {
			continue
		}
		if perm[i] == i {
			swaps[i] = i
			continue
		}
		j := i
		tmp := pages[i]
		for {
			if swaps[j] >= 0 {
				raise(invariantError("reorderPages", "page slot processed twice during reorder"))
			}
			next := perm[j]
			if next == i {
				pages[j] = tmp
				swaps[j] = next
				break
			}
			pages[j] = pages[next]
			swaps[j] = next
			j = next
		}
	}
}

// rewriteOffsets rewrites every node's offset to point at its page's
// new slot, preserving the in-page bits exactly (spec.md section 4.G
// phase 3). po and degrees describe the traversal that produced perm.
func rewriteOffsets(offsets *LongArray, degrees *IntArray, po *pageOrdering) {
	for i := 0; i < len(po.reverseOrdering); i++ {
		newPageBits := po.reverseOrdering[i] << DefaultPageShift
		lo, hi := po.pageOffsets[i], po.pageOffsets[i+1]
		for node := lo; node < hi; node++ {
			if degrees.Get(node) > 0 {
				addr := offsets.Get(node)
				offsets.Set(node, (addr&pageMask)|newPageBits)
			} else {
				offsets.Set(node, 0)
			}
		}
	}
}

// Reorder runs the full three-phase page-reordering optimizer over an
// adjacency heap's pages in place, updating offsets to match (spec.md
// section 4.G). Must be called only once no readers or writers of
// pages/offsets are active, per the concurrency model in section 5.
func Reorder[T any](pages [][]T, offsets *LongArray, degrees *IntArray) {
	numPages := int64(len(pages))
	if numPages == 0 {
		return
	}
	po := detectOrdering(offsets, degrees, numPages)
	perm := fullPermutation(po.distinctOrdering, numPages)
	reorderPages(pages, perm)
	rewriteOffsets(offsets, degrees, po)
}
