package gds

import "github.com/dustin/go-humanize"

// Fixed overhead constants used by the estimation calculus, matching
// spec.md section 4.A. Grounded on the teacher's fixed page/node
// header sizes (constants.go: PageHeaderSize, NodeHeaderSize) —
// carried forward here as the equivalent object/array/instance
// overheads a Go runtime actually pays (slice header + allocator
// bucket rounding), not the MDBX on-disk format sizes.
const (
	arrayHeaderBytes    int64 = 24
	instanceOverhead    int64 = 16
	referenceSizeBytes  int64 = 8
	alignmentBytes      int64 = 8
)

// align8 rounds n up to the next multiple of 8.
func align8(n int64) int64 {
	return (n + (alignmentBytes - 1)) &^ (alignmentBytes - 1)
}

// SizeOfPrimitiveArray estimates the bytes held by a single contiguous
// primitive array of n elements of bytesPerElem each.
func SizeOfPrimitiveArray(n int64, bytesPerElem int64) int64 {
	if n < 0 {
		n = 0
	}
	return align8(arrayHeaderBytes + n*bytesPerElem)
}

// SizeOfReferenceArray estimates the bytes held by a slice of n
// pointer-sized references.
func SizeOfReferenceArray(n int64) int64 {
	return SizeOfPrimitiveArray(n, referenceSizeBytes)
}

// SizeOfPaged estimates the bytes held by a paged huge array of n
// elements of bytesPerElem each, including the page-vector overhead.
func SizeOfPaged(n int64, bytesPerElem int64) int64 {
	if n <= 0 {
		return instanceOverhead + SizeOfReferenceArray(0)
	}
	pages := pagesFor(n)
	tail := tailLen(n)
	full := SizeOfReferenceArray(pages)
	if pages > 1 {
		full += (pages - 1) * SizeOfPrimitiveArray(PageSize, bytesPerElem)
	}
	full += SizeOfPrimitiveArray(tail, bytesPerElem)
	return instanceOverhead + full
}

// nextPowerOfTwo returns the smallest power of two >= n (n >= 1).
func nextPowerOfTwo(n int64) int64 {
	if n < 1 {
		return 1
	}
	p := int64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// SizeOfHashContainer estimates the bytes held by an open-addressed
// hash container sized for n entries: two backing arrays, 4-byte keys
// and reference-sized values, at capacity
// max(2, nextPow2(ceil(n/0.75))).
func SizeOfHashContainer(n int64) int64 {
	if n < 0 {
		n = 0
	}
	cap := nextPowerOfTwo((n*4 + 2) / 3) // ceil(n / 0.75)
	if cap < 2 {
		cap = 2
	}
	keys := SizeOfPrimitiveArray(cap, 4)
	values := SizeOfReferenceArray(cap)
	return instanceOverhead + keys + values
}

// SizeOfBitset estimates the bytes held by a bitset of nBits bits,
// packed into 64-bit words (spill/bitmap.go's Bitmap representation).
func SizeOfBitset(nBits int64) int64 {
	if nBits < 0 {
		nBits = 0
	}
	words := (nBits + 63) / 64
	return SizeOfPrimitiveArray(words, 8) + instanceOverhead
}

// HumanSize renders a byte count for diagnostics (CLI/log output
// only, never consulted by the estimation calculus itself).
func HumanSize(bytes int64) string {
	if bytes < 0 {
		return humanize.Bytes(0)
	}
	return humanize.Bytes(uint64(bytes))
}
